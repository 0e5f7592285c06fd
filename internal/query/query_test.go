package query

import (
	"strings"
	"testing"
	"time"

	"polypress/internal/models"
)

func TestBuilderWhereRewritesPlaceholders(t *testing.T) {
	var b Builder
	b.Add("e.id = ?", int64(7))
	b.Add("t.culture = ?", "en")
	b.Add("(t.title ILIKE ? OR e.id::text = ?)", "%go%", "go")

	got := b.Where()
	want := "WHERE e.id = $1 AND t.culture = $2 AND (t.title ILIKE $3 OR e.id::text = $4)"
	if got != want {
		t.Errorf("Where: got %q, want %q", got, want)
	}
	if len(b.Args()) != 4 {
		t.Errorf("Args: got %d, want 4", len(b.Args()))
	}
	if b.NextArg() != 5 {
		t.Errorf("NextArg: got %d, want 5", b.NextArg())
	}
}

func TestBuilderWhereEmpty(t *testing.T) {
	var b Builder
	if got := b.Where(); got != "" {
		t.Errorf("empty builder: got %q, want empty string", got)
	}
}

func TestComposeIDWinsOverOtherFilters(t *testing.T) {
	p := NewParams()
	p.ID = 42
	p.Term = "ignored"
	p.Tag = "ignored"
	p.IsEnabled = models.Enabled
	p.UserID = 9

	var b Builder
	Compose(&b, p, time.Now())

	where := b.Where()
	if !strings.Contains(where, "e.id = $1") {
		t.Errorf("expected id clause, got %q", where)
	}
	if !strings.Contains(where, "t.culture = $2") {
		t.Errorf("expected culture clause alongside id, got %q", where)
	}
	// Everything else is ignored once an id is given.
	if len(b.Args()) != 2 {
		t.Errorf("expected exactly 2 args, got %d (%q)", len(b.Args()), where)
	}
}

func TestComposeSlugPrefix(t *testing.T) {
	p := NewParams()
	p.Culture = ""
	p.SlugPrefix = "hello-world"

	var b Builder
	Compose(&b, p, time.Now())

	if got := b.Where(); got != "WHERE e.term LIKE $1" {
		t.Errorf("got %q", got)
	}
	if b.Args()[0] != "hello-world%" {
		t.Errorf("prefix arg: got %v", b.Args()[0])
	}
}

func TestComposeAllSentinelAddsNoStatusClause(t *testing.T) {
	p := NewParams()
	p.Culture = ""

	var b Builder
	Compose(&b, p, time.Now())

	if got := b.Where(); got != "" {
		t.Errorf("all-sentinel params should produce no clauses, got %q", got)
	}
}

func TestComposeStatusFilters(t *testing.T) {
	p := NewParams()
	p.Culture = ""
	p.IsEnabled = models.Enabled
	p.IsArchive = models.Disabled
	p.IsFeatured = models.FeaturedOn

	var b Builder
	Compose(&b, p, time.Now())

	where := b.Where()
	for _, want := range []string{"e.is_enabled =", "e.is_archive =", "e.is_featured ="} {
		if !strings.Contains(where, want) {
			t.Errorf("missing %q in %q", want, where)
		}
	}
	if strings.Contains(where, "e.is_approved") {
		t.Errorf("approved left at sentinel must be skipped: %q", where)
	}
}

func TestComposePublicOverridesStatusFilters(t *testing.T) {
	p := NewParams()
	p.Culture = ""
	p.IsPublic = true
	// Contradictory values must be overridden by the public shortcut.
	p.IsEnabled = models.Disabled
	p.IsApproved = models.Disabled
	p.IsArchive = models.Enabled

	var b Builder
	Compose(&b, p, time.Now())

	args := b.Args()
	if len(args) != 3 {
		t.Fatalf("expected 3 status args, got %d", len(args))
	}
	if args[0] != models.Enabled || args[1] != models.Enabled || args[2] != models.Disabled {
		t.Errorf("public shortcut args: got %v", args)
	}
}

func TestComposeCategoryByName(t *testing.T) {
	p := NewParams()
	p.CategoryName = "Travel"
	p.ContentType = models.ContentBlog

	var b Builder
	Compose(&b, p, time.Now())

	where := b.Where()
	for _, want := range []string{"cc.type =", "cd.title =", "cd.culture ="} {
		if !strings.Contains(where, want) {
			t.Errorf("missing %q in %q", want, where)
		}
	}
}

func TestComposeCategoryIDSetBeatsSingleID(t *testing.T) {
	p := NewParams()
	p.Culture = ""
	p.CategoryID = 3
	p.CategoryIDs = []int64{1, 2}

	var b Builder
	Compose(&b, p, time.Now())

	where := b.Where()
	if !strings.Contains(where, "cc.category_id = ANY(") {
		t.Errorf("expected id-set clause, got %q", where)
	}
	if strings.Contains(where, "cc.category_id = $2") {
		t.Errorf("single-id clause must not be added with an id set: %q", where)
	}
}

func TestComposeTermSearch(t *testing.T) {
	p := NewParams()
	p.Culture = ""
	p.Term = "42"

	var b Builder
	Compose(&b, p, time.Now())

	where := b.Where()
	if !strings.Contains(where, "e.id::text = $4") {
		t.Errorf("term search must match raw id as string: %q", where)
	}
}

func TestComposeNotAdvancedSkipsFilters(t *testing.T) {
	p := NewParams()
	p.Advanced = false
	p.Term = "something"
	p.IsEnabled = models.Enabled

	var b Builder
	Compose(&b, p, time.Now())

	if got := b.Where(); got != "" {
		t.Errorf("non-advanced query should add no clauses, got %q", got)
	}
}

func TestWindow(t *testing.T) {
	// Wednesday, 15 April 2026, 10:30 UTC.
	now := time.Date(2026, 4, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter models.DateFilter
		from   time.Time
		to     time.Time
		ok     bool
	}{
		{
			name:   "all is skipped",
			filter: models.DateAll,
			ok:     false,
		},
		{
			name:   "today",
			filter: models.DateToday,
			from:   time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
			to:     time.Date(2026, 4, 16, 0, 0, 0, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "this week starts monday",
			filter: models.DateThisWeek,
			from:   time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC),
			to:     time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "this month",
			filter: models.DateThisMonth,
			from:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			to:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "previous month",
			filter: models.DatePrevMonth,
			from:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			to:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "previous three months",
			filter: models.DatePrev3Months,
			from:   time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
			to:     now,
			ok:     true,
		},
		{
			name:   "this year",
			filter: models.DateThisYear,
			from:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			to:     time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "previous year",
			filter: models.DatePrevYear,
			from:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			to:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "last 24 hours",
			filter: models.DateLast24Hours,
			from:   now.Add(-24 * time.Hour),
			to:     now,
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := Window(tt.filter, now)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !from.Equal(tt.from) {
				t.Errorf("from: got %v, want %v", from, tt.from)
			}
			if !to.Equal(tt.to) {
				t.Errorf("to: got %v, want %v", to, tt.to)
			}
		})
	}
}

func TestWindowWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	now := time.Date(2026, 4, 19, 23, 0, 0, 0, time.UTC)
	from, _, ok := Window(models.DateThisWeek, now)
	if !ok {
		t.Fatal("expected a window")
	}
	want := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)
	if !from.Equal(want) {
		t.Errorf("from: got %v, want %v", from, want)
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "known column desc",
			expr: "created_at desc",
			want: "ORDER BY e.created_at DESC, e.id ASC",
		},
		{
			name: "multiple pairs",
			expr: "priority asc, title desc",
			want: "ORDER BY e.priority ASC, t.title DESC, e.id ASC",
		},
		{
			name: "unknown column dropped",
			expr: "password desc",
			want: "ORDER BY e.id DESC",
		},
		{
			name: "empty uses fallback",
			expr: "",
			want: "ORDER BY e.id DESC",
		},
		{
			name: "injection attempt dropped",
			expr: "1; DROP TABLE blogs --",
			want: "ORDER BY e.id DESC",
		},
		{
			name: "id order needs no tiebreak",
			expr: "id asc",
			want: "ORDER BY e.id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Order(tt.expr, "e.id DESC"); got != tt.want {
				t.Errorf("Order(%q): got %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestLimits(t *testing.T) {
	p := NewParams()
	p.PageNumber = 3
	p.PageSize = 10
	limit, offset, apply := p.Limits()
	if !apply || limit != 10 || offset != 20 {
		t.Errorf("got limit=%d offset=%d apply=%v", limit, offset, apply)
	}

	p.LoadAll = true
	if _, _, apply := p.Limits(); apply {
		t.Error("load-all must disable paging")
	}

	p = NewParams()
	p.ID = 5
	if _, _, apply := p.Limits(); apply {
		t.Error("by-id fetch must disable paging")
	}

	// Invalid values fall back to defaults rather than erroring.
	p = NewParams()
	p.PageNumber = -1
	p.PageSize = 0
	limit, offset, apply = p.Limits()
	if !apply || limit != DefaultPageSize || offset != 0 {
		t.Errorf("defaults: got limit=%d offset=%d apply=%v", limit, offset, apply)
	}
}
