package matching

import "strings"

const (
	BucketEntry     = "entry"
	BucketMid       = "mid"
	BucketSenior    = "senior"
	BucketLead      = "lead"
	BucketExecutive = "executive"
)

// levelKeywords maps free-text level strings to buckets. It is an ordered
// first-match list, not a map: when keywords overlap ("senior staff engineer")
// the earlier entry decides.
var levelKeywords = []struct {
	keyword string
	bucket  string
}{
	{"intern", BucketEntry},
	{"graduate", BucketEntry},
	{"junior", BucketEntry},
	{"entry", BucketEntry},
	{"实习", BucketEntry},
	{"应届", BucketEntry},
	{"初级", BucketEntry},
	{"mid", BucketMid},
	{"intermediate", BucketMid},
	{"中级", BucketMid},
	{"senior", BucketSenior},
	{"高级", BucketSenior},
	{"资深", BucketSenior},
	{"lead", BucketLead},
	{"principal", BucketLead},
	{"staff", BucketLead},
	{"主管", BucketLead},
	{"负责人", BucketLead},
	{"executive", BucketExecutive},
	{"director", BucketExecutive},
	{"chief", BucketExecutive},
	{"总监", BucketExecutive},
	{"高管", BucketExecutive},
}

// levelBucket returns the bucket for a free-text experience level, or "" when
// nothing in the table matches.
func levelBucket(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	for _, kv := range levelKeywords {
		if strings.Contains(s, kv.keyword) {
			return kv.bucket
		}
	}
	return ""
}
