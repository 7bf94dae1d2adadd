package cloc

// languageByExtension maps lowercased file extensions (or whole basenames
// for extensionless files like "makefile") to language names. The name set
// follows SLOCCount's, which is what downstream reporting expects.
var languageByExtension = map[string]string{
	"c":   "ansic",
	"ec":  "ansic",
	"ecp": "ansic",
	"pgc": "ansic",

	"cpp": "cpp",
	"cxx": "cpp",
	"cc":  "cpp",
	"pcc": "cpp",

	"m":  "objc",
	"cs": "cs",

	"h":   "h",
	"hpp": "h",
	"hh":  "h",

	"ada": "ada",
	"adb": "ada",
	"ads": "ada",
	"pad": "ada",

	"f":   "fortran",
	"f77": "fortran",
	"f90": "f90",

	"cob": "cobol",
	"cbl": "cobol",

	"p":   "pascal",
	"pas": "pascal",
	"pp":  "pascal",
	"dpr": "pascal",

	"py": "python",

	"s":   "asm",
	"asm": "asm",

	"sh":   "sh",
	"bash": "sh",
	"csh":  "csh",
	"tcsh": "csh",

	"java": "java",

	"lisp": "lisp",
	"el":   "lisp",
	"scm":  "lisp",
	"sc":   "lisp",
	"lsp":  "lisp",
	"cl":   "lisp",
	"jl":   "lisp",

	"tcl": "tcl",
	"tk":  "tcl",
	"itk": "tcl",

	"exp": "exp",

	"pl":   "perl",
	"pm":   "perl",
	"perl": "perl",
	"ph":   "perl",

	"awk": "awk",
	"sed": "sed",
	"y":   "yacc",
	"l":   "lex",

	"makefile": "makefile",
	"sql":      "sql",

	"php":  "php",
	"php3": "php",
	"php4": "php",
	"php5": "php",
	"php6": "php",
	"inc":  "php",

	"m3": "modula3",
	"i3": "modula3",
	"mg": "modula3",
	"ig": "modula3",

	"ml":  "ml",
	"mli": "ml",
	"mly": "ml",
	"mll": "ml",

	"rb": "ruby",

	"hs":  "haskell",
	"lhs": "haskell",

	"jsp": "jsp",
	"js":  "javascript",
	"ts":  "javascript",

	"xml":  "xml",
	"html": "xml",
	"css":  "css",

	"cmake": "cmake",
	"idl":   "idl",

	"go": "go",
	"rs": "rust",
}

// UnknownLanguage is recorded for files whose extension has no mapping, so
// their line counts still land somewhere instead of being dropped.
const UnknownLanguage = "unknown"

// commentSyntax describes how a language marks comments.
type commentSyntax struct {
	line       []string
	blockStart string
	blockEnd   string
}

var cSyntax = commentSyntax{line: []string{"//"}, blockStart: "/*", blockEnd: "*/"}
var hashSyntax = commentSyntax{line: []string{"#"}}

var syntaxByLanguage = map[string]commentSyntax{
	"ansic":      {blockStart: "/*", blockEnd: "*/"},
	"cpp":        cSyntax,
	"h":          cSyntax,
	"objc":       cSyntax,
	"cs":         cSyntax,
	"java":       cSyntax,
	"javascript": cSyntax,
	"jsp":        cSyntax,
	"go":         cSyntax,
	"rust":       cSyntax,
	"css":        {blockStart: "/*", blockEnd: "*/"},
	"idl":        cSyntax,
	"php":        {line: []string{"//", "#"}, blockStart: "/*", blockEnd: "*/"},

	"python":   hashSyntax,
	"ruby":     hashSyntax,
	"perl":     hashSyntax,
	"sh":       hashSyntax,
	"csh":      hashSyntax,
	"tcl":      hashSyntax,
	"exp":      hashSyntax,
	"awk":      hashSyntax,
	"sed":      hashSyntax,
	"makefile": hashSyntax,
	"cmake":    hashSyntax,

	"ada":     {line: []string{"--"}},
	"sql":     {line: []string{"--"}, blockStart: "/*", blockEnd: "*/"},
	"haskell": {line: []string{"--"}, blockStart: "{-", blockEnd: "-}"},
	"lisp":    {line: []string{";"}},
	"asm":     {line: []string{";", "#"}},
	"fortran": {line: []string{"!", "c ", "C "}},
	"f90":     {line: []string{"!"}},
	"pascal":  {line: []string{"//"}, blockStart: "{", blockEnd: "}"},
	"modula3": {blockStart: "(*", blockEnd: "*)"},
	"ml":      {blockStart: "(*", blockEnd: "*)"},
	"xml":     {blockStart: "<!--", blockEnd: "-->"},
	"yacc":    cSyntax,
	"lex":     cSyntax,
	"cobol":   {line: []string{"*"}},
}
