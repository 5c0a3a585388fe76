package groups

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	uriScheme      = "content"
	collectionPath = "local-groups"
)

type match int

const (
	matchCollection match = iota
	matchItem
)

type target struct {
	kind match
	id   int64
}

// matcher recognizes the collection and item URIs for one authority.
type matcher struct {
	authority string
}

func (m matcher) CollectionURI() string {
	return uriScheme + "://" + m.authority + "/" + collectionPath
}

func (m matcher) ItemURI(id int64) string {
	return m.CollectionURI() + "/" + strconv.FormatInt(id, 10)
}

func (m matcher) match(raw string) (target, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return target{}, fmt.Errorf("%w: %q: %w", ErrUnknownURI, raw, err)
	}
	if u.Scheme != uriScheme || u.Host != m.authority {
		return target{}, fmt.Errorf("%w: %q", ErrUnknownURI, raw)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if segments[0] != collectionPath {
		return target{}, fmt.Errorf("%w: %q", ErrUnknownURI, raw)
	}
	switch len(segments) {
	case 1:
		return target{kind: matchCollection}, nil
	case 2:
		id, err := strconv.ParseInt(segments[1], 10, 64)
		if err != nil || id < 0 {
			return target{}, fmt.Errorf("%w: %q: id must be a non-negative integer", ErrUnknownURI, raw)
		}
		return target{kind: matchItem, id: id}, nil
	default:
		return target{}, fmt.Errorf("%w: %q", ErrUnknownURI, raw)
	}
}
