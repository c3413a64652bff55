package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports"
)

// pageSize matches the PostgREST range the original export script used.
const pageSize = 1000

var csvHeader = []string{
	"id", "full_name", "first_name", "last_name", "email", "phone",
	"credits", "is_active", "created_at", "updated_at",
}

// MemberExporter produces the member dumps served over HTTP and written by
// the export CLI. CSV uses a semicolon separator so the files open cleanly
// in French-locale Excel, same as the original export script.
type MemberExporter struct {
	members ports.MemberRepo
}

func NewMemberExporter(members ports.MemberRepo) *MemberExporter {
	return &MemberExporter{members: members}
}

// Members fetches all members page by page, oldest first. A limit of 0
// means no limit.
func (e *MemberExporter) Members(ctx context.Context, limit int) ([]*domain.Member, error) {
	var res []*domain.Member
	for offset := 0; ; offset += pageSize {
		size := pageSize
		if limit > 0 && limit-len(res) < size {
			size = limit - len(res)
		}
		if size <= 0 {
			break
		}

		page, err := e.members.ListRange(ctx, offset, size)
		if err != nil {
			return nil, fmt.Errorf("fetch members page: %w", err)
		}
		res = append(res, page...)

		if len(page) < size {
			break
		}
	}

	return res, nil
}

func (e *MemberExporter) MembersCSV(ctx context.Context, limit int) ([]byte, error) {
	members, err := e.Members(ctx, limit)
	if err != nil {
		return nil, err
	}

	return MembersCSV(members)
}

func MembersCSV(members []*domain.Member) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, m := range members {
		record := []string{
			m.ID, m.FullName, m.FirstName, m.LastName, m.Email, m.Phone,
			strconv.Itoa(m.Credits), strconv.FormatBool(m.IsActive),
			m.CreatedAt.UTC().Format(time.RFC3339),
			m.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// Filename timestamps the download the same way the original backend did.
func Filename(now time.Time) string {
	return fmt.Sprintf("members-%s.csv", now.UTC().Format("2006-01-02-15-04-05"))
}
