package records

import (
	"strings"
	"testing"

	"github.com/officialsayandeeppaul/RecordHub/models"
)

func TestCreateRecordRequestValidate(t *testing.T) {
	valid := CreateRecordRequest{Title: "Weekly review"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	cases := []struct {
		name  string
		req   CreateRecordRequest
		field string
	}{
		{"missing title", CreateRecordRequest{Title: "   "}, "title"},
		{"title too long", CreateRecordRequest{Title: strings.Repeat("a", 201)}, "title"},
		{"description too long", CreateRecordRequest{Title: "x", Description: strings.Repeat("a", 1001)}, "description"},
		{"content too long", CreateRecordRequest{Title: "x", Content: strings.Repeat("a", 50001)}, "content"},
		{"bad status", CreateRecordRequest{Title: "x", Status: "DONE"}, "status"},
		{"bad priority", CreateRecordRequest{Title: "x", Priority: "CRITICAL"}, "priority"},
		{"too many tags", CreateRecordRequest{Title: "x", Tags: make([]string, 11)}, "tags"},
		{"tag too long", CreateRecordRequest{Title: "x", Tags: []string{strings.Repeat("a", 51)}}, "tags"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.req.Validate()
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error for %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestUpdateRecordRequestValidatePartial(t *testing.T) {
	empty := UpdateRecordRequest{}
	if errs := empty.Validate(); len(errs) != 0 {
		t.Fatalf("empty update must be valid, got %v", errs)
	}

	blank := ""
	if errs := (&UpdateRecordRequest{Title: &blank}).Validate(); errs["title"] == "" {
		t.Fatal("expected error for blank title on update")
	}

	bad := models.RecordStatus("DONE")
	if errs := (&UpdateRecordRequest{Status: &bad}).Validate(); errs["status"] == "" {
		t.Fatal("expected error for unknown status on update")
	}

	ok := models.StatusCompleted
	if errs := (&UpdateRecordRequest{Status: &ok}).Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
