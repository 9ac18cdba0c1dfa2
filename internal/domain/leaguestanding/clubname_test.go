package leaguestanding

import "testing"

func TestClubNamer_ClubName(t *testing.T) {
	t.Parallel()

	namer := DefaultClubNamer()
	cases := map[string]string{
		"Box Hill United U13":  "Box Hill United",
		"Box Hill United u18":  "Box Hill United",
		"Box Hill United  U16": "Box Hill United",
		"Box Hill United":      "Box Hill United",
		"Box Hill United U19":  "Box Hill United U19",
		"Box Hill U13 Blue":    "Box Hill U13 Blue",
		"U13":                  "U13",
		"Heidelberg U13 ":      "Heidelberg U13 ",
	}
	for in, want := range cases {
		if got := namer.ClubName(in); got != want {
			t.Fatalf("ClubName(%q)=%q want %q", in, got, want)
		}
	}
}

func TestNewClubNamer_CustomTokens(t *testing.T) {
	t.Parallel()

	namer, err := NewClubNamer([]string{" U12 ", "", "Reserves"})
	if err != nil {
		t.Fatalf("new club namer: %v", err)
	}
	if got := namer.ClubName("Avondale RESERVES"); got != "Avondale" {
		t.Fatalf("unexpected club name %q", got)
	}
	if got := namer.ClubName("Avondale U13"); got != "Avondale U13" {
		t.Fatalf("default tokens must not apply, got %q", got)
	}
}

func TestNewClubNamer_RejectsEmptyTokens(t *testing.T) {
	t.Parallel()

	if _, err := NewClubNamer([]string{" ", ""}); err == nil {
		t.Fatalf("expected error for empty token list")
	}
}

func TestClubNamer_ZeroValueReturnsName(t *testing.T) {
	t.Parallel()

	var namer ClubNamer
	if got := namer.ClubName("Moreland U13"); got != "Moreland U13" {
		t.Fatalf("unexpected club name %q", got)
	}
}
