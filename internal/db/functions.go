package db

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/alexanderramin/wartung/internal/masterdata"
	"modernc.org/sqlite"
)

// GermanCollation orders text like the in-memory customer query does.
const GermanCollation = "de_DE"

var (
	registerOnce sync.Once
	registerErr  error
)

// registerFunctions installs casefold(x) and the de_DE collation on the
// sqlite driver. The driver keeps them process-wide, so this runs once.
func registerFunctions() error {
	registerOnce.Do(func() {
		if err := sqlite.RegisterDeterministicScalarFunction("casefold", 1, casefold); err != nil {
			registerErr = fmt.Errorf("casefold: %w", err)
			return
		}
		if err := sqlite.RegisterCollationUtf8(GermanCollation, masterdata.CompareGerman); err != nil {
			registerErr = fmt.Errorf("%s collation: %w", GermanCollation, err)
		}
	})
	return registerErr
}

func casefold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return masterdata.Fold(v), nil
	case []byte:
		return masterdata.Fold(string(v)), nil
	default:
		return masterdata.Fold(fmt.Sprint(v)), nil
	}
}
