package export

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite column names for the value row, index-aligned with the table
// contract. The human-readable headers and symbolic variable names travel in
// the companion batch_columns table so nothing from the three-row layout is
// lost.
var sqliteColumns = [Columns]string{
	"solid_mass",
	"silicate_mass",
	"sio2_fraction",
	"na2o_fraction",
	"naoh_mass",
	"water_mass",
	"sio2_fraction_new",
	"na2o_fraction_new",
	"liquid_density",
	"liquid_mass",
	"silicate_modulus",
	"sio2_in_silicate",
	"na2o_in_silicate",
	"na2o_from_naoh",
	"modulus_back",
	"initial_alkali",
	"final_alkali",
	"solid_liquid_back",
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS batch_sheet (
	solid_mass        REAL NOT NULL,
	silicate_mass     REAL NOT NULL,
	sio2_fraction     REAL NOT NULL,
	na2o_fraction     REAL NOT NULL,
	naoh_mass         REAL NOT NULL,
	water_mass        REAL NOT NULL,
	sio2_fraction_new REAL NOT NULL,
	na2o_fraction_new REAL NOT NULL,
	liquid_density    REAL NOT NULL,
	liquid_mass       REAL NOT NULL,
	silicate_modulus  REAL NOT NULL,
	sio2_in_silicate  REAL NOT NULL,
	na2o_in_silicate  REAL NOT NULL,
	na2o_from_naoh    REAL NOT NULL,
	modulus_back      REAL NOT NULL,
	initial_alkali    REAL NOT NULL,
	final_alkali      REAL NOT NULL,
	solid_liquid_back REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS batch_columns (
	position    INTEGER PRIMARY KEY,
	column_name TEXT NOT NULL,
	header      TEXT NOT NULL,
	var_name    TEXT NOT NULL
);
`

// WriteSQLite writes one solved batch into a SQLite database file at path.
// The file holds exactly one batch_sheet row per export; it is an output
// format like the xlsx and CSV sinks, not a run history.
func WriteSQLite(t Table, path string) error {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	for i := 0; i < Columns; i++ {
		if _, err := db.Exec(
			`INSERT OR REPLACE INTO batch_columns (position, column_name, header, var_name) VALUES (?, ?, ?, ?)`,
			i+1, sqliteColumns[i], t.Headers[i], t.VarNames[i],
		); err != nil {
			return fmt.Errorf("write column metadata: %w", err)
		}
	}

	stmt := "INSERT INTO batch_sheet ("
	args := make([]any, Columns)
	for i := 0; i < Columns; i++ {
		if i > 0 {
			stmt += ", "
		}
		stmt += sqliteColumns[i]
		args[i] = t.Values[i]
	}
	stmt += ") VALUES (?" + strings.Repeat(", ?", Columns-1) + ")"
	if _, err := db.Exec(stmt, args...); err != nil {
		return fmt.Errorf("write batch row: %w", err)
	}
	return nil
}
