package viewer

import (
	"fmt"
	"io"
	"strings"

	"github.com/writeloop/dbview/internal/database"
)

// hashPreviewLen is how many characters of a stored hash are ever shown in
// list output. Detail output is the exception: an operator asking for one
// specific user gets the full value.
const hashPreviewLen = 30

const timeLayout = "2006-01-02 15:04:05"

// RenderUsers writes the user count and an aligned listing of all users,
// each hash cut to a preview.
func RenderUsers(w io.Writer, users []User) {
	fmt.Fprintf(w, "Total users: %d\n\n", len(users))

	if len(users) == 0 {
		fmt.Fprintln(w, "  no users found")
		return
	}

	fmt.Fprintf(w, "%-5s %-20s %-20s %s\n", "ID", "USERNAME", "CREATED_AT", "HASH PREVIEW")
	fmt.Fprintln(w, separator)
	for _, u := range users {
		fmt.Fprintf(w, "%-5d %-20s %-20s %s\n",
			u.ID, u.Username, u.CreatedAt.Format(timeLayout), previewHash(u.HashedPassword))
	}
}

// RenderUserDetail writes every field of a single user, including the full
// stored hash.
func RenderUserDetail(w io.Writer, u *User) {
	fmt.Fprintf(w, "User: %s\n", u.Username)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "  ID:         %d\n", u.ID)
	fmt.Fprintf(w, "  Username:   %s\n", u.Username)
	fmt.Fprintf(w, "  Created at: %s\n", u.CreatedAt.Format(timeLayout))
	fmt.Fprintf(w, "  Hash:       %s\n", u.HashedPassword)
}

// RenderSchema writes the table inventory and, when available, the column
// structure of the users table.
func RenderSchema(w io.Writer, s *Schema) {
	fmt.Fprintln(w, "Tables:")
	fmt.Fprintln(w, separator)
	if len(s.Tables) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, t := range s.Tables {
		fmt.Fprintf(w, "  - %s\n", t)
	}

	if s.Users == nil {
		return
	}

	fmt.Fprintf(w, "\nStructure of %s:\n", s.Users.Name)
	fmt.Fprintln(w, separator)
	for _, c := range s.Users.Columns {
		fmt.Fprintf(w, "  %-20s %-20s %s\n", c.Name, c.DataType, columnKey(c))
	}
}

// previewHash returns the first hashPreviewLen characters of hash with a
// trailing ellipsis marking the cut.
func previewHash(hash string) string {
	if len(hash) > hashPreviewLen {
		hash = hash[:hashPreviewLen]
	}
	return hash + "..."
}

// columnKey summarises a column's constraints the way DESCRIBE does.
func columnKey(c *database.ColumnInfo) string {
	switch {
	case c.IsPrimary:
		return "PRI"
	case c.IsUnique:
		return "UNI"
	case !c.Nullable:
		return "NOT NULL"
	default:
		return ""
	}
}

// separator matches the 50-dash rule the rest of the WriteLoop tooling prints.
var separator = strings.Repeat("-", 50)
