// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command postingdump decodes a raw posting-list block (as produced by one
// of the invidx codecs) and prints one line per record. It takes the place
// of the debug tooling the original block-storage layer ships alongside its
// codecs; here it is a small, standalone reader since on-disk block
// storage itself is out of scope.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sneller-labs/invidx/invidx"
)

var (
	dashc    string
	dashbase uint64
	dashv    bool
)

func init() {
	flag.StringVar(&dashc, "codec", "", "codec to decode with: numeric, freqs, freqs-fields, freqs-fields-wide, fields, fields-wide, doc-ids")
	flag.Uint64Var(&dashbase, "base", 0, "base document id for the block")
	flag.BoolVar(&dashv, "v", false, "verbose: print byte offsets alongside each record")
}

func main() {
	log.SetFlags(0)
	flag.Parse()
	args := flag.Args()
	if dashc == "" || len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: postingdump -codec <name> [-base N] <block-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("postingdump: %s", err)
	}
	defer f.Close()

	dec, err := decoderFor(dashc)
	if err != nil {
		log.Fatalf("postingdump: %s", err)
	}

	if err := dump(os.Stdout, bufio.NewReader(f), dec, dashbase, dashv); err != nil {
		log.Fatalf("postingdump: %s", err)
	}
}

func decoderFor(name string) (invidx.Decoder, error) {
	switch name {
	case "numeric":
		return invidx.NumericCodec{}, nil
	case "freqs":
		return invidx.FreqsOnlyCodec{}, nil
	case "freqs-fields":
		return invidx.FreqsFieldsCodec{}, nil
	case "freqs-fields-wide":
		return invidx.FreqsFieldsWideCodec{}, nil
	case "fields":
		return invidx.FieldsOnlyCodec{}, nil
	case "fields-wide":
		return invidx.FieldsOnlyWideCodec{}, nil
	case "doc-ids":
		return invidx.DocIDsOnlyCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

// dump decodes records from r one at a time, printing each to w, until r is
// exhausted. The first record's delta is applied to base, and each later
// record's delta to the doc id decoded just before it, since every record
// stores the gap from its predecessor. Per the codec contract, a record
// that fails the decoder's (nil, always-matching) filter is still printed:
// this tool has no filter to apply, so match is expected to always be true.
func dump(w io.Writer, r *bufio.Reader, dec invidx.Decoder, base uint64, verbose bool) error {
	var offset int
	for i := 0; ; i++ {
		if _, err := r.Peek(1); errors.Is(err, io.EOF) {
			return nil
		}
		var rec invidx.IndexResult
		n, match, err := dec.Decode(r, base, &rec)
		if err != nil {
			return fmt.Errorf("record %d at offset %d: %w", i, offset, err)
		}
		if verbose {
			fmt.Fprintf(w, "[%d] ", offset)
		}
		fmt.Fprintf(w, "doc_id=%d kind=%s match=%v", rec.DocID, rec.Kind, match)
		if rec.Frequency != 0 {
			fmt.Fprintf(w, " freq=%d", rec.Frequency)
		}
		if !rec.FieldMask.IsZero() {
			fmt.Fprintf(w, " field_mask=%#x%016x", rec.FieldMask.Hi, rec.FieldMask.Lo)
		}
		if rec.Kind == invidx.KindNumeric {
			fmt.Fprintf(w, " value=%v", rec.Numeric)
		}
		fmt.Fprintln(w)
		offset += n
		base = rec.DocID
	}
}
