package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

const timeFormat = time.RFC3339Nano

// EncodeLedgerToken creates an opaque token pointing just past the given ledger row.
func EncodeLedgerToken(cursor domain.LedgerCursor) string {
	return EncodeMultiFieldToken(cursor.Date.UTC().Format(timeFormat), strconv.FormatInt(cursor.ID, 10))
}

// DecodeLedgerToken parses a token produced by EncodeLedgerToken.
func DecodeLedgerToken(token string) (domain.LedgerCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.LedgerCursor{}, err
	}
	if len(parts) != 2 {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id < 1 {
		return domain.LedgerCursor{}, fmt.Errorf("invalid pagination token format (id parse)")
	}
	return domain.LedgerCursor{Date: date.UTC(), ID: id}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
