// Numfmt rewrites the numbers in its input in canonical short form.
//
// Usage:
//
//	numfmt [-32] [-e char] [-plus] [-radix n] [-o output] [file...]
//
// Numfmt reads the named files, or else standard input, as a sequence of
// lines of space-separated fields in the manner of Go's [strings.Fields].
// Every field that is an integer is printed in decimal, or in the radix
// given by -radix. Every other field that parses as a float is printed in
// the shortest form that parses back to the same float.
// Fields that are not numbers are printed unchanged.
// Output fields are separated by single spaces.
//
// The -32 flag treats floats as float32 values instead of float64.
//
// The -e flag specifies the exponent marker of scientific notation.
//
// The -plus flag prints a '+' before non-negative numbers.
//
// The -o flag specifies the name of a file to write instead of using standard output.
//
// # Example
//
//	% echo '1e8 0.10000000000000001 0x1p-2 42 NaN x' | numfmt
//	1e+8 0.1 0.25 42 NaN x
//	%
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/govalues/numfmt"
)

var (
	f32flag   = flag.Bool("32", false, "treat floats as float32")
	eflag     = flag.String("e", "e", "use `char` as the exponent marker")
	plusflag  = flag.Bool("plus", false, "print '+' before non-negative numbers")
	radixflag = flag.Int("radix", 10, "print integers in radix `n`")
	oflag     = flag.String("o", "", "write output to `file` (default standard output)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: numfmt [-32] [-e char] [-plus] [-radix n] [-o output] [file...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("numfmt: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if len(*eflag) != 1 {
		log.Fatalf("exponent marker %q must be a single byte", *eflag)
	}
	f := &formatter{
		opts: numfmt.Options{
			Exponent: (*eflag)[0],
			PlusSign: *plusflag,
			Radix:    *radixflag,
		},
		bitSize: 64,
	}
	if *f32flag {
		f.bitSize = 32
	}
	if err := f.opts.Validate(); err != nil {
		log.Fatal(err)
	}

	outfile := os.Stdout
	if *oflag != "" {
		file, err := os.Create(*oflag)
		if err != nil {
			log.Fatal(err)
		}
		outfile = file
	}
	output := bufio.NewWriter(outfile)

	if flag.NArg() == 0 {
		if err := f.copy(output, os.Stdin); err != nil {
			log.Fatal(err)
		}
	}
	for _, name := range flag.Args() {
		file, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		err = f.copy(output, file)
		file.Close()
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
	}

	if err := output.Flush(); err != nil {
		log.Fatal(err)
	}
	if err := outfile.Close(); err != nil {
		log.Fatal(err)
	}
}

type formatter struct {
	opts    numfmt.Options
	bitSize int
	buf     []byte
}

// copy reformats every line of r and writes it to w.
func (f *formatter) copy(w io.Writer, r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		f.buf = f.line(f.buf[:0], s.Text())
		if _, err := w.Write(f.buf); err != nil {
			return err
		}
	}
	return s.Err()
}

// line appends the reformatted fields of text and a newline to dst.
func (f *formatter) line(dst []byte, text string) []byte {
	for i, field := range strings.Fields(text) {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = f.field(dst, field)
	}
	return append(dst, '\n')
}

// field appends the reformatted field to dst.
// Options are validated up front, so formatting cannot fail.
func (f *formatter) field(dst []byte, field string) []byte {
	if i, err := strconv.ParseInt(field, 10, 64); err == nil {
		dst, _ = numfmt.AppendIntWithOptions(dst, i, f.opts)
		return dst
	}
	if u, err := strconv.ParseUint(field, 10, 64); err == nil {
		dst, _ = numfmt.AppendIntWithOptions(dst, u, f.opts)
		return dst
	}
	x, err := strconv.ParseFloat(field, f.bitSize)
	if err != nil {
		return append(dst, field...)
	}
	opts := f.opts
	opts.Radix = 10
	if f.bitSize == 32 {
		dst, _ = numfmt.AppendFloat32WithOptions(dst, float32(x), opts)
	} else {
		dst, _ = numfmt.AppendFloat64WithOptions(dst, x, opts)
	}
	return dst
}
