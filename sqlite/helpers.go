package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// parseRFC3339 parses an RFC3339 timestamp, naming the field on failure.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			query.WriteString(" LIMIT -1")
		}
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// splitList reverses the joins used when storing list columns.
func splitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
