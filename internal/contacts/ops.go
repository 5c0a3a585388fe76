package contacts

import (
	"errors"
	"fmt"
	"strconv"
)

// Well-known column and mimetype values.
const (
	ColumnRawContactID     = "raw_contact_id"
	ColumnMimeType         = "mimetype"
	ColumnAccountName      = "account_name"
	ColumnAccountType      = "account_type"
	MimeTypeStructuredName = "vnd.android.cursor.item/name"
)

var (
	// ErrInvalidOperation reports a malformed operation batch.
	ErrInvalidOperation = errors.New("invalid contact operation")
	// ErrInvalidColumn reports a value assigned to an unknown column.
	ErrInvalidColumn = errors.New("invalid column")
)

// OpKind selects the table an operation writes.
type OpKind int

const (
	// OpInsertRawContact creates a contact.
	OpInsertRawContact OpKind = iota + 1
	// OpInsertData adds a data row to the contact created by the BackRef operation.
	OpInsertData
)

func (k OpKind) String() string {
	switch k {
	case OpInsertRawContact:
		return "insert_raw_contact"
	case OpInsertData:
		return "insert_data"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one write in a batch. Nil values store NULL.
type Op struct {
	Kind    OpKind
	Values  map[string]any
	BackRef int
}

// NewRawContactInsert returns an operation creating a contact with no account.
func NewRawContactInsert() Op {
	return Op{
		Kind:   OpInsertRawContact,
		Values: map[string]any{ColumnAccountType: nil, ColumnAccountName: nil},
	}
}

// NewDataInsert returns an operation adding a data row to the contact created
// by the operation at index backRef.
func NewDataInsert(backRef int, values map[string]any) Op {
	return Op{Kind: OpInsertData, Values: values, BackRef: backRef}
}

var rawContactColumns = map[string]struct{}{
	ColumnAccountName: {},
	ColumnAccountType: {},
}

var dataColumns = func() map[string]struct{} {
	cols := map[string]struct{}{
		ColumnMimeType:     {},
		"is_primary":       {},
		"is_super_primary": {},
	}
	for i := 1; i <= 15; i++ {
		cols["data"+strconv.Itoa(i)] = struct{}{}
	}
	return cols
}()

// Result reports the row id written by the operation at the same index.
type Result struct {
	Kind OpKind
	ID   int64
}
