package table

import "errors"

var (
	// ErrUnknownColumn indicates access to a column the table does not have
	ErrUnknownColumn = errors.New("unknown column")

	// ErrDuplicateColumn indicates two columns with the same name
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrMultipleKeys indicates more than one primary key column
	ErrMultipleKeys = errors.New("table can have at most one primary key")

	// ErrRowDeleted indicates modification of a row marked as deleted
	ErrRowDeleted = errors.New("row is deleted")

	// ErrRowDetached indicates an operation that requires a row attached to a table
	ErrRowDetached = errors.New("row is detached")

	// ErrForeignRow indicates a row created by another table
	ErrForeignRow = errors.New("row belongs to another table")

	// ErrDuplicateTable indicates a table name already registered in a set
	ErrDuplicateTable = errors.New("table already exists")
)
