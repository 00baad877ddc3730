package sqlite

// Schema DDL. Rows keep the store order in position; contact_id is a UUID
// v7 assigned when a row is written.
const (
	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    contact_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    phone TEXT NOT NULL,
    label TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    blocked INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	idxContactsPosition = `CREATE INDEX IF NOT EXISTS idx_contacts_position ON contacts(position);`
)

// schemaDDL lists the statements run on Open, in order.
var schemaDDL = []string{
	createContacts,
	idxContactsPosition,
}
