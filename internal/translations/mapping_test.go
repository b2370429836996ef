package translations

import (
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/polyglot/pkg/query"
)

func TestFiltersOverallQualityAtMost(t *testing.T) {
	quality := 6
	f := Filters{OverallQuality: &quality}

	sql, args := f.Apply(query.NewBuilder(projection)).Build()

	if !strings.Contains(sql, "t.overall_quality <= $1") {
		t.Errorf("sql = %q, want overall_quality <= condition", sql)
	}
	if len(args) != 1 {
		t.Fatalf("args = %v, want one value", args)
	}
}

func TestFiltersFromQueryOverallQuality(t *testing.T) {
	values := url.Values{"overall_quality": []string{"7"}}

	f := FiltersFromQuery(values)

	if f.OverallQuality == nil || *f.OverallQuality != 7 {
		t.Fatalf("OverallQuality = %v, want 7", f.OverallQuality)
	}

	sql, _ := f.Apply(query.NewBuilder(projection)).Build()
	if strings.Contains(sql, "t.overall_quality = ") {
		t.Errorf("sql = %q, quality should not use exact matching", sql)
	}
}
