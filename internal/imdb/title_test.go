package imdb

import "testing"

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{
			name: "dots and year",
			file: "The.Matrix.1999.1080p.BluRay.x264.mkv",
			want: "The Matrix",
		},
		{
			name: "underscores",
			file: "Blade_Runner_1982_720p.mkv",
			want: "Blade Runner",
		},
		{
			name: "resolution before year",
			file: "Alien.1080p.1979.mkv",
			want: "Alien",
		},
		{
			name: "release tag cuts",
			file: "Heat.REMUX.HEVC.mkv",
			want: "Heat",
		},
		{
			name: "bracketed year",
			file: "Arrival.(2016).WEBRip.mkv",
			want: "Arrival",
		},
		{
			name: "dimension pair",
			file: "Clip.1920x1080.mp4",
			want: "Clip",
		},
		{
			name: "spaces kept as is",
			file: "2001 A Space Odyssey.mkv",
			want: "2001 A Space Odyssey",
		},
		{
			name: "full path accepted",
			file: "/media/movies/Se7en.1995.mkv",
			want: "Se7en",
		},
		{
			name: "all tags falls back to stem",
			file: "1080p.x264.mkv",
			want: "1080p x264",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTitle(tt.file); got != tt.want {
				t.Errorf("ParseTitle(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}
