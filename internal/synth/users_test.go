package synth

import (
	"fmt"
	"reflect"
	"testing"
)

func userIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("u%05d", i)
	}
	return ids
}

func TestEnrichUsersCompleteness(t *testing.T) {
	ids := userIDs(50)

	users := NewEnricher(DefaultConfig()).EnrichUsers(ids)
	if len(users) != len(ids) {
		t.Fatalf("Expected %d users, got %d", len(ids), len(users))
	}
	for i, u := range users {
		if u.UserID != ids[i] {
			t.Errorf("Position %d: expected user id %s, got %s", i, ids[i], u.UserID)
		}
		if u.UserName == "" || u.Name == "" || u.Mail == "" || u.Province == "" {
			t.Errorf("User %s has empty identity fields: %+v", u.UserID, u)
		}
	}
}

func TestEnrichUsersDeterminism(t *testing.T) {
	ids := userIDs(200)

	u1 := NewEnricher(DefaultConfig()).EnrichUsers(ids)
	u2 := NewEnricher(DefaultConfig()).EnrichUsers(ids)

	if !reflect.DeepEqual(u1, u2) {
		t.Error("Same seeds produced different user tables")
	}
}

func TestEnrichUsersSeedsIndependent(t *testing.T) {
	ids := userIDs(100)

	base := NewEnricher(DefaultConfig()).EnrichUsers(ids)

	// Reseeding the demographics must not move the identity sequence.
	cfg := DefaultConfig()
	cfg.DemographicSeed = 999
	reseeded := NewEnricher(cfg).EnrichUsers(ids)

	for i := range base {
		if base[i].UserName != reseeded[i].UserName || base[i].Mail != reseeded[i].Mail {
			t.Fatalf("Demographic seed changed the identity sequence at %d", i)
		}
	}
}

func TestEnrichUsersGender(t *testing.T) {
	ids := userIDs(1000)

	users := NewEnricher(DefaultConfig()).EnrichUsers(ids)
	males := 0
	for _, u := range users {
		switch u.Gender {
		case "M":
			males++
		case "F":
		default:
			t.Fatalf("Unexpected gender %q", u.Gender)
		}
	}

	// Seeded draw, so the count is stable; just check the skew is present.
	frac := float64(males) / float64(len(users))
	if frac < 0.15 || frac > 0.25 {
		t.Errorf("Expected male fraction near 0.2, got %.3f", frac)
	}
}

func TestEnrichUsersGenderExtremes(t *testing.T) {
	ids := userIDs(20)

	cfg := DefaultConfig()
	cfg.MaleProbability = 0
	for _, u := range NewEnricher(cfg).EnrichUsers(ids) {
		if u.Gender != "F" {
			t.Fatalf("MaleProbability=0 produced gender %q", u.Gender)
		}
	}

	cfg.MaleProbability = 1
	for _, u := range NewEnricher(cfg).EnrichUsers(ids) {
		if u.Gender != "M" {
			t.Fatalf("MaleProbability=1 produced gender %q", u.Gender)
		}
	}
}

func TestEnrichUsersAgeBranchSplit(t *testing.T) {
	// Zero the normal spread and pin the uniform range so the two branches
	// are distinguishable by value.
	cfg := DefaultConfig()
	cfg.AgeMean = 30
	cfg.AgeStdDev = 0
	cfg.AgeMin = 50
	cfg.AgeMax = 50

	users := NewEnricher(cfg).EnrichUsers(userIDs(1000))

	// floor(0.8 * 1000) = 800 users from the normal branch, as one leading
	// block; the remaining 200 from the uniform branch.
	for i, u := range users {
		want := 30
		if i >= 800 {
			want = 50
		}
		if u.Age != want {
			t.Fatalf("User %d: expected age %d, got %d", i, want, u.Age)
		}
	}
}

func TestEnrichUsersAgeBranchFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AgeStdDev = 0
	cfg.AgeMin = 50
	cfg.AgeMax = 50

	// 7 * 0.8 = 5.6, so exactly 5 users take the normal branch.
	users := NewEnricher(cfg).EnrichUsers(userIDs(7))
	normal := 0
	for _, u := range users {
		if u.Age == 30 {
			normal++
		}
	}
	if normal != 5 {
		t.Errorf("Expected floor(0.8*7)=5 normal-branch users, got %d", normal)
	}
}

func TestEnrichUsersEmptyInput(t *testing.T) {
	users := NewEnricher(DefaultConfig()).EnrichUsers(nil)
	if len(users) != 0 {
		t.Errorf("Expected no users for empty input, got %d", len(users))
	}
}
