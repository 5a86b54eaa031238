package store

import "fmt"

type TableKind uint8

const (
	TABLE_KEY_VALUE = TableKind(iota)
	TABLE_TIMER
)

func (k TableKind) String() string {
	switch k {
	case TABLE_KEY_VALUE:
		return "KeyValue"
	case TABLE_TIMER:
		return "Timer"
	default:
		return fmt.Sprintf("TableKind(%d)", uint8(k))
	}
}

// TableConfig is how an operator declares a storage need. The table manager
// owns the resulting table; the config itself is consumed read-only.
type TableConfig struct {
	Name        string
	Kind        TableKind
	RetentionMs int64
}
