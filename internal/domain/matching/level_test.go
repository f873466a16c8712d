package matching

import "testing"

func TestLevelBucket(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Junior Developer", BucketEntry},
		{"Entry Level", BucketEntry},
		{"实习生", BucketEntry},
		{"初级工程师", BucketEntry},
		{"Mid-level", BucketMid},
		{"中级", BucketMid},
		{"Senior Engineer", BucketSenior},
		{"高级", BucketSenior},
		{"资深专家", BucketSenior},
		{"Tech Lead", BucketLead},
		{"Principal Engineer", BucketLead},
		{"Engineering Director", BucketExecutive},
		{"总监", BucketExecutive},
		{"", ""},
		{"Wizard", ""},
	}

	for _, c := range cases {
		if got := levelBucket(c.in); got != c.want {
			t.Fatalf("levelBucket(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLevelBucket_FirstMatchWins(t *testing.T) {
	// "senior" precedes "staff" and "lead" in the table.
	if got := levelBucket("Senior Staff Engineer"); got != BucketSenior {
		t.Fatalf("expected first keyword in table order to win, got %q", got)
	}
	if got := levelBucket("Senior Tech Lead"); got != BucketSenior {
		t.Fatalf("expected senior before lead, got %q", got)
	}
}
