package naming

import "testing"

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"clip.mp4", "clip_transcoded.mov"},
		{"clip.01.mp4", "clip_transcoded.mov"},
		{"GOPR0042.MP4", "GOPR0042_transcoded.mov"},
		{"noextension", "noextension_transcoded.mov"},
		{".hidden", "_transcoded.mov"},
		{"a b.mkv", "a b_transcoded.mov"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := OutputName(tt.in); got != tt.want {
				t.Errorf("OutputName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	if got := BaseName("clip.01.mp4"); got != "clip" {
		t.Errorf("BaseName = %q, want %q", got, "clip")
	}
}
