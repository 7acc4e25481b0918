package services

import (
	"context"
	"errors"
	"testing"
)

func TestOfficialsDirectory(t *testing.T) {
	ctx := context.Background()
	officials := NewOfficialService(newTestStore(t))

	if _, err := officials.CreateOfficial(ctx, citizen, OfficialInput{FullName: "R. Iyer", Department: "Roads"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	var verr *ValidationError
	if _, err := officials.CreateOfficial(ctx, admin, OfficialInput{FullName: "R. Iyer"}); !errors.As(err, &verr) || verr.Fields["department"] == "" {
		t.Fatalf("expected department to be required, got %v", err)
	}

	seed := []OfficialInput{
		{FullName: "S. Khan", Department: "Water Supply", Email: "S.Khan@City.gov"},
		{FullName: "R. Iyer", Department: "Roads"},
		{FullName: "A. Das", Department: "Roads"},
	}
	ids := map[string]string{}
	for _, in := range seed {
		o, err := officials.CreateOfficial(ctx, admin, in)
		if err != nil {
			t.Fatalf("CreateOfficial %s: %v", in.FullName, err)
		}
		if !o.IsActive {
			t.Fatalf("new official should be active")
		}
		ids[in.FullName] = o.ID
	}

	list, err := officials.ListOfficials(ctx)
	if err != nil {
		t.Fatalf("ListOfficials: %v", err)
	}
	var order []string
	for _, o := range list {
		order = append(order, o.FullName)
	}
	if len(order) != 3 || order[0] != "A. Das" || order[1] != "R. Iyer" || order[2] != "S. Khan" {
		t.Fatalf("expected department order, got %v", order)
	}
	if list[2].Email != "s.khan@city.gov" {
		t.Fatalf("email not normalised: %q", list[2].Email)
	}

	if err := officials.SetOfficialActive(ctx, admin, ids["R. Iyer"], false); err != nil {
		t.Fatalf("SetOfficialActive: %v", err)
	}
	list, err = officials.ListOfficials(ctx)
	if err != nil {
		t.Fatalf("ListOfficials: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("inactive official still listed: %+v", list)
	}
	if err := officials.SetOfficialActive(ctx, admin, "missing", false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOfficialsEmpty(t *testing.T) {
	list, err := NewOfficialService(newTestStore(t)).ListOfficials(context.Background())
	if err != nil {
		t.Fatalf("ListOfficials: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected an empty slice, got %#v", list)
	}
}
