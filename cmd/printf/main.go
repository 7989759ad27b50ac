// Command printf renders a format string against command-line
// arguments, in the manner of printf(1). One argument is consumed per
// conversion directive and parsed to match it: integer verbs accept
// decimal plus the 0x, 0o and 0b prefixes, %s takes the text as is,
// %c takes the first byte. Missing arguments read as zero or empty.
// The format string understands the \n, \t, \r, \0 and \\ escapes.
//
// Usage:
//
//	printf [-o file] FORMAT [ARG...]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/IvanJohansen/printf"
)

var outPath = flag.String("o", "", "write to `file` instead of standard output")

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	format := unescape(flag.Arg(0))
	args, err := convert(format, flag.Args()[1:])
	if err != nil {
		printf.Fprintf(os.Stderr, "printf: %s\n", err.Error())
		os.Exit(2)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			printf.Fprintf(os.Stderr, "printf: %s\n", err.Error())
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	_, err = printf.Fprintf(bw, format, args...)
	if flushErr := bw.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		printf.Fprintf(os.Stderr, "printf: %s\n", err.Error())
		os.Exit(1)
	}
}

func usage() {
	printf.Fprintf(os.Stderr, "usage: printf [-o file] FORMAT [ARG...]\n")
	flag.PrintDefaults()
}

// convert walks the directives of format and parses one command-line
// word for each, so %d receives an integer and %s the raw text. A '*'
// width or precision consumes a word of its own.
func convert(format string, words []string) ([]any, error) {
	var out []any
	take := func() (string, bool) {
		if len(words) == 0 {
			return "", false
		}
		w := words[0]
		words = words[1:]
		return w, true
	}

	i := 0
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("0-+ #", format[i]) >= 0 {
			i++
		}
		var err error
		if i, err = fieldArg(format, i, take, &out); err != nil {
			return nil, err
		}
		if i < len(format) && format[i] == '.' {
			i++
			if i, err = fieldArg(format, i, take, &out); err != nil {
				return nil, err
			}
		}
		for i < len(format) && strings.IndexByte("lhtzj", format[i]) >= 0 {
			i++
		}
		if i >= len(format) {
			break
		}
		verb := format[i]
		i++

		switch verb {
		case 'd', 'i':
			word, ok := take()
			if !ok {
				out = append(out, 0)
				break
			}
			v, err := strconv.ParseInt(word, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %q for %%%c: %w", word, verb, err)
			}
			out = append(out, v)
		case 'u', 'x', 'X', 'o', 'b', 'p':
			word, ok := take()
			if !ok {
				out = append(out, 0)
				break
			}
			v, err := strconv.ParseUint(word, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %q for %%%c: %w", word, verb, err)
			}
			if verb == 'p' {
				out = append(out, uintptr(v))
			} else {
				out = append(out, v)
			}
		case 'c':
			word, _ := take()
			if word == "" {
				out = append(out, 0)
			} else {
				out = append(out, word[0])
			}
		case 's':
			word, _ := take()
			out = append(out, word)
		}
	}
	return out, nil
}

// fieldArg advances past a width or precision field, consuming one
// integer word when the field is '*'.
func fieldArg(format string, i int, take func() (string, bool), out *[]any) (int, error) {
	if i < len(format) && format[i] == '*' {
		n := 0
		if word, ok := take(); ok {
			var err error
			n, err = strconv.Atoi(word)
			if err != nil {
				return 0, fmt.Errorf("field width %q: %w", word, err)
			}
		}
		*out = append(*out, n)
		return i + 1, nil
	}
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	return i, nil
}

// unescape rewrites the backslash sequences printf(1) formats carry.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
