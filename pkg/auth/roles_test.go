package auth

import "testing"

func TestValidRole(t *testing.T) {
	for _, role := range []string{"", RoleManager, RoleAdmin} {
		if !ValidRole(role) {
			t.Errorf("expected %q to be valid", role)
		}
	}
	for _, role := range []string{"user", "superadmin", "Admin", " manager"} {
		if ValidRole(role) {
			t.Errorf("expected %q to be rejected", role)
		}
	}
}

func TestTierForRole(t *testing.T) {
	cases := []struct {
		role string
		want Tier
	}{
		{"", TierNone},
		{"user", TierNone},
		{"unknown", TierNone},
		{RoleManager, TierManager},
		{RoleAdmin, TierAdmin},
	}
	for _, c := range cases {
		if got := TierForRole(c.role); got != c.want {
			t.Errorf("TierForRole(%q) = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestTierPermissions(t *testing.T) {
	if TierNone.CanManageUpdates() {
		t.Error("TierNone must not manage updates")
	}
	if !TierManager.CanManageUpdates() {
		t.Error("TierManager must manage updates")
	}
	if !TierAdmin.CanManageUpdates() {
		t.Error("TierAdmin must manage updates")
	}

	if TierManager.CanManageUsers() {
		t.Error("TierManager must not manage users")
	}
	if !TierAdmin.CanManageUsers() {
		t.Error("TierAdmin must manage users")
	}
}

func TestGenerateSessionToken(t *testing.T) {
	a, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a == b {
		t.Error("expected distinct tokens")
	}
	if len(a) < 40 {
		t.Errorf("token looks too short: %d chars", len(a))
	}
}
