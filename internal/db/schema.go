//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

const Schema = `
CREATE TABLE IF NOT EXISTS reviews (
    doc_id TEXT PRIMARY KEY,
    author TEXT,
    title TEXT,
    publication TEXT,
    place TEXT,
    url TEXT,
    genre TEXT,
    review_date TEXT,
    year INTEGER,
    decade INTEGER,
    noise_ratio REAL,
    flagged INTEGER,
    flag_reason TEXT,
    clean_text TEXT,
    processed_text TEXT
);

CREATE INDEX IF NOT EXISTS idx_reviews_year ON reviews(year);
CREATE INDEX IF NOT EXISTS idx_reviews_genre ON reviews(genre);

CREATE TABLE IF NOT EXISTS topic_weights (
    doc_id TEXT NOT NULL,
    topic INTEGER NOT NULL,
    weight REAL NOT NULL,
    PRIMARY KEY (doc_id, topic),
    FOREIGN KEY (doc_id) REFERENCES reviews(doc_id)
);

CREATE TABLE IF NOT EXISTS run_metadata (
    key TEXT PRIMARY KEY,
    value TEXT
);
`
