package mysql

const createKVSQL = `
CREATE TABLE IF NOT EXISTS kv (
  k          VARCHAR(191) NOT NULL PRIMARY KEY,
  v          MEDIUMTEXT   NOT NULL,
  updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4
`

const getKVSQL = `SELECT v FROM kv WHERE k = ?`

const upsertKVSQL = `
INSERT INTO kv (k, v)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  v          = VALUES(v),
  updated_at = CURRENT_TIMESTAMP
`
