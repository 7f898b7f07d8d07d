package semetrika

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// DefaultStorePath is where the learned length dictionary lives unless the
// caller says otherwise.
const DefaultStorePath = ".semetrika_lengths.db"

// Schema for the length store. One row per word; verdicts holds one
// character per monophthong slot: 'l' long, 's' short, 'u' unknown.
const storeSchema = `
CREATE TABLE IF NOT EXISTS lengths (
	form TEXT PRIMARY KEY,
	verdicts TEXT NOT NULL
);
`

// Save persists the dictionary's verdicts to a SQLite file at path,
// replacing any previous contents. Frequencies are working data and are
// not persisted.
func (d *LengthDictionary) Save(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open length store: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(storeSchema); err != nil {
		return fmt.Errorf("init length store: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM lengths`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO lengths (form, verdicts) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for form, vs := range d.verdicts {
		if _, err := stmt.Exec(form, encodeVerdicts(vs)); err != nil {
			return fmt.Errorf("store %q: %w", form, err)
		}
	}
	return tx.Commit()
}

// LoadLengthDictionary reads a previously saved dictionary. The returned
// dictionary is lookup-only: it carries verdicts but no frequencies.
func LoadLengthDictionary(path string) (*LengthDictionary, error) {
	// sql.Open would happily create an empty file; stat first so a
	// missing store is reported as such.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("length store: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open length store: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT form, verdicts FROM lengths`)
	if err != nil {
		return nil, fmt.Errorf("read length store: %w", err)
	}
	defer rows.Close()

	verdicts := make(map[string][]Length)
	for rows.Next() {
		var form, encoded string
		if err := rows.Scan(&form, &encoded); err != nil {
			return nil, err
		}
		verdicts[form] = decodeVerdicts(encoded)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &LengthDictionary{verdicts: verdicts}, nil
}

func encodeVerdicts(vs []Length) string {
	var b strings.Builder
	for _, v := range vs {
		switch v {
		case LengthLong:
			b.WriteByte('l')
		case LengthShort:
			b.WriteByte('s')
		default:
			b.WriteByte('u')
		}
	}
	return b.String()
}

func decodeVerdicts(encoded string) []Length {
	vs := make([]Length, len(encoded))
	for i := 0; i < len(encoded); i++ {
		switch encoded[i] {
		case 'l':
			vs[i] = LengthLong
		case 's':
			vs[i] = LengthShort
		default:
			vs[i] = LengthUnknown
		}
	}
	return vs
}
