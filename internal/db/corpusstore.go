//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/str"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

var Msg = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)

//
// SQLITE CORPUS STORE
//

// the whole pipeline is reproducible from the raw csv files; the database is
// a convenience so downstream queries do not have to re-run the modeler

type CorpusDB struct {
	db *sql.DB
}

// NewCorpusDB - open (or create) the corpus database and make sure the schema exists
func NewCorpusDB(dbpath string) (*CorpusDB, error) {
	d, err := sql.Open("sqlite3", dbpath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database: %w", err)
	}

	if _, err := d.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	cdb := &CorpusDB{db: d}
	if _, err := d.Exec(Schema); err != nil {
		return nil, fmt.Errorf("failed to initialize corpus schema: %w", err)
	}

	return cdb, nil
}

func (c *CorpusDB) Close() error {
	return c.db.Close()
}

// StoreRecords - upsert the merged corpus in one transaction
func (c *CorpusDB) StoreRecords(recs []str.ReviewRecord) error {
	const (
		MSG1 = "StoreRecords() stored %d records"
		Q    = `INSERT OR REPLACE INTO reviews
			(doc_id, author, title, publication, place, url, genre, review_date,
			year, decade, noise_ratio, flagged, flag_reason, clean_text, processed_text)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	)

	tx, err := c.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(Q)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := range recs {
		r := &recs[i]
		d := ""
		if r.HasDate {
			d = r.Date.Format("2006-01-02")
		}
		fl := 0
		if r.Flagged {
			fl = 1
		}
		_, err := stmt.Exec(r.ID, r.Author, r.Title, r.Publication, r.Place, r.URL,
			r.Genre, d, r.Year, r.Decade, r.NoiseRatio, fl, r.FlagReason,
			r.CleanText, r.ProcessedText)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(recs)))
	return nil
}

// StoreAssignments - per-document topic weights, one row per (doc, topic)
func (c *CorpusDB) StoreAssignments(asn []str.TopicAssignment) error {
	const (
		MSG1 = "StoreAssignments() stored weights for %d documents"
		Q    = "INSERT OR REPLACE INTO topic_weights (doc_id, topic, weight) VALUES (?, ?, ?)"
	)

	tx, err := c.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(Q)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := range asn {
		for t, w := range asn[i].Weights {
			if _, err := stmt.Exec(asn[i].DocID, t, w); err != nil {
				tx.Rollback()
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	Msg.FYI(fmt.Sprintf(MSG1, len(asn)))
	return nil
}

// SetMetadata - record a fact about this run (seed, topic count, timestamps)
func (c *CorpusDB) SetMetadata(key string, value string) error {
	_, err := c.db.Exec("INSERT OR REPLACE INTO run_metadata (key, value) VALUES (?, ?)", key, value)
	return err
}

// CountRecords - how many reviews the store currently holds
func (c *CorpusDB) CountRecords() (int, error) {
	var n int
	err := c.db.QueryRow("SELECT COUNT(*) FROM reviews").Scan(&n)
	return n, err
}
