package cloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		language string
		code     int
		comments int
		blanks   int
	}{
		{
			name:     "c file",
			filename: "main.c",
			content:  "/* header */\nint main() {\n\nreturn 0;\n}\n",
			language: "ansic",
			code:     3,
			comments: 1,
			blanks:   1,
		},
		{
			name:     "python with hash comments",
			filename: "run.py",
			content:  "#!/usr/bin/env python\n# setup\n\nprint('hi')\n",
			language: "python",
			code:     1,
			comments: 2,
			blanks:   1,
		},
		{
			name:     "go block comment spanning lines",
			filename: "lib.go",
			content:  "/*\nlicense\n*/\npackage lib\n\n// helper\nfunc f() {}\n",
			language: "go",
			code:     2,
			comments: 4,
			blanks:   1,
		},
		{
			name:     "sql double dash",
			filename: "schema.sql",
			content:  "-- schema\nCREATE TABLE t (id INT);\n",
			language: "sql",
			code:     1,
			comments: 1,
		},
		{
			name:     "extensionless makefile",
			filename: "makefile",
			content:  "# build\nall:\n\tgo build\n",
			language: "makefile",
			code:     2,
			comments: 1,
		},
		{
			name:     "unknown extension counts code only",
			filename: "data.xyz",
			content:  "# not a comment here\nvalue\n",
			language: "unknown",
			code:     2,
		},
		{
			name:     "no trailing newline",
			filename: "a.py",
			content:  "x = 1",
			language: "python",
			code:     1,
		},
	}

	classifier := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, err := classifier.Classify(tt.filename, []byte(tt.content))
			require.NoError(t, err)
			require.Len(t, counts, 1)
			assert.Equal(t, tt.language, counts[0].Language)
			assert.Equal(t, tt.code, counts[0].Code, "code lines")
			assert.Equal(t, tt.comments, counts[0].Comments, "comment lines")
			assert.Equal(t, tt.blanks, counts[0].Blanks, "blank lines")
		})
	}
}

func TestClassifyEmptyContent(t *testing.T) {
	counts, err := NewClassifier().Classify("main.c", nil)
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestClassifyBucketsSumToTotal(t *testing.T) {
	content := "// a\n\nint x;\n/* b */\nint y;\n\n"
	counts, err := NewClassifier().Classify("x.cpp", []byte(content))
	require.NoError(t, err)
	require.Len(t, counts, 1)
	total := counts[0].Code + counts[0].Comments + counts[0].Blanks
	assert.Equal(t, 6, total)
}

func TestLanguageForFile(t *testing.T) {
	assert.Equal(t, "python", LanguageForFile("setup.py"))
	assert.Equal(t, "cpp", LanguageForFile("engine.CC"))
	assert.Equal(t, "makefile", LanguageForFile("Makefile"))
	assert.Equal(t, "unknown", LanguageForFile("README"))
}
