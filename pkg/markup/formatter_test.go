package markup

import "testing"

func TestFormatBullets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no bullets passes through",
			in:   "Plain paragraph.\nAnother line.",
			want: "Plain paragraph.\nAnother line.",
		},
		{
			name: "single run becomes one list",
			in:   "Intro:\n* first\n* second\nOutro.",
			want: "Intro:\n<ul>\n<li>first</li>\n<li>second</li>\n</ul>\nOutro.",
		},
		{
			name: "run closes at end of input",
			in:   "Intro:\n* only",
			want: "Intro:\n<ul>\n<li>only</li>\n</ul>",
		},
		{
			name: "two separated runs become two lists",
			in:   "* a\ntext\n* b",
			want: "<ul>\n<li>a</li>\n</ul>\ntext\n<ul>\n<li>b</li>\n</ul>",
		},
		{
			name: "indented bullets join the run",
			in:   "* a\n  * b",
			want: "<ul>\n<li>a</li>\n<li>b</li>\n</ul>",
		},
		{
			name: "asterisk without space is not a bullet",
			in:   "*emphasis* stays",
			want: "*emphasis* stays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBullets(tt.in); got != tt.want {
				t.Errorf("FormatBullets(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBulletsIdempotentWithoutBullets(t *testing.T) {
	inputs := []string{
		"",
		"one line",
		"line one\nline two\n",
		"trailing spaces  \nand tabs\t",
	}
	for _, in := range inputs {
		if got := FormatBullets(in); got != in {
			t.Errorf("FormatBullets(%q) = %q, want input unchanged", in, got)
		}
	}
}
