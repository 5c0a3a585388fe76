package preload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"namekey/internal/contacts"
)

const (
	tokenAt          = "@"
	tokenMimeType    = "@mimetype"
	mimeTypeConstant = dataClass + ".MIMETYPE"
)

var expressionPattern = regexp.MustCompile(`^\{\{(.+?)\}\}$`)

// ErrMalformed reports a document that does not follow the preload layout.
var ErrMalformed = errors.New("malformed preloaded contacts document")

type document struct {
	Contacts []struct {
		Data []map[string]json.RawMessage `json:"data"`
	} `json:"contacts"`
}

// Parser converts preload documents into contact operations. Resolved names
// are cached per Parser; a Parser is not safe for concurrent use.
type Parser struct {
	resolved map[string]string
}

// NewParser returns a Parser with an empty resolution cache.
func NewParser() *Parser {
	return &Parser{resolved: make(map[string]string)}
}

// Parse reads a document and returns one raw contact insert per contact, each
// followed by its data inserts. Entries with nothing left after resolution
// are dropped.
func (p *Parser) Parse(r io.Reader) ([]contacts.Op, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	var ops []contacts.Op
	for i, contact := range doc.Contacts {
		ops = append(ops, contacts.NewRawContactInsert())
		backRef := len(ops) - 1

		for j, entry := range contact.Data {
			values := make(map[string]any, len(entry))
			for key, raw := range entry {
				value, err := scalarString(raw)
				if err != nil {
					return nil, fmt.Errorf("%w: contact %d entry %d key %q: %w", ErrMalformed, i, j, key, err)
				}
				resolvedKey := p.Resolve(key)
				resolvedValue := value
				if m := expressionPattern.FindStringSubmatch(value); m != nil {
					resolvedValue = p.Resolve(m[1])
				}
				if resolvedKey == "" || resolvedValue == "" {
					continue
				}
				values[resolvedKey] = resolvedValue
			}
			// A bare row has no mimetype and would fail the whole batch.
			if len(values) == 0 {
				continue
			}
			ops = append(ops, contacts.NewDataInsert(backRef, values))
		}
	}
	return ops, nil
}

// Resolve maps a symbolic name to its constant value, or "" when the name
// does not resolve.
func (p *Parser) Resolve(encoded string) string {
	if encoded == "" {
		return ""
	}
	if value, ok := p.resolved[encoded]; ok {
		return value
	}

	unwrapped := encoded
	switch {
	case encoded == tokenMimeType:
		unwrapped = mimeTypeConstant
	case strings.HasPrefix(encoded, tokenAt):
		unwrapped = strings.ReplaceAll(encoded, tokenAt, commonKindsClass)
	}

	value := lookupConstant(unwrapped)
	p.resolved[encoded] = value
	return value
}

func lookupConstant(absolute string) string {
	idx := strings.LastIndexByte(absolute, '.')
	if idx == -1 || idx >= len(absolute)-1 {
		return ""
	}
	return constants[absolute[:idx]][absolute[idx+1:]]
}

// scalarString renders a JSON scalar the way it is stored. Null is empty.
func scalarString(raw json.RawMessage) (string, error) {
	var v any
	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	decoder.UseNumber()
	if err := decoder.Decode(&v); err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		if t {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("unsupported value %s", string(raw))
	}
}
