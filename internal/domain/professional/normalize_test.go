package professional

import "testing"

func TestNormalizePlatform(t *testing.T) {
	cases := map[string]string{
		"Facebook":    "facebook",
		"  TikTok  ":  "tiktok",
		"instagram":   "instagram",
		" LinkedIn\t": "linkedin",
	}
	for in, want := range cases {
		if got := NormalizePlatform(in); got != want {
			t.Errorf("NormalizePlatform(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeCheckType(t *testing.T) {
	if got := NormalizeCheckType(" Police "); got != CheckTypePolice {
		t.Fatalf("expected police, got %q", got)
	}
	if NormalizeCheckType("fiscal").Valid() {
		t.Fatalf("unknown check type must not validate")
	}
}

func TestNormalizeImageStage(t *testing.T) {
	if got := NormalizeImageStage(" BEFORE "); got != ImageStageBefore {
		t.Fatalf("expected before, got %q", got)
	}
	if got := NormalizeImageStage(""); got != ImageStageGeneral {
		t.Fatalf("empty stage must default to general, got %q", got)
	}
	if NormalizeImageStage("thumbnail").Valid() {
		t.Fatalf("unknown stage must not validate")
	}
}
