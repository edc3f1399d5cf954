package deploy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Permit is an allow-list entry registered in the sale permitted list.
type Permit struct {
	Account util.Uint160
	// Remaining is a purchase limit in whole tokens.
	Remaining int64
	Precheck  bool
}

// LoadAllowList reads allow-list file, see ParseAllowList.
func LoadAllowList(path string, defaultAllowance int64) ([]Permit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open allow-list file: %w", err)
	}
	defer f.Close()

	return ParseAllowList(f, defaultAllowance)
}

// ParseAllowList reads newline-delimited buyer entries of the form
//
//	<address> [remaining] [precheck]
//
// Fields are separated by whitespace or commas. Empty lines and lines
// starting with '#' are skipped. Missing remaining is set to
// defaultAllowance. Repeated addresses are rejected.
func ParseAllowList(r io.Reader, defaultAllowance int64) ([]Permit, error) {
	var (
		res  []Permit
		seen = make(map[util.Uint160]int)
		sc   = bufio.NewScanner(r)
		line int
	)

	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) > 3 {
			return nil, fmt.Errorf("line %d: too many fields", line)
		}

		acc, err := address.StringToUint160(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: decode address: %w", line, err)
		}

		if prev, ok := seen[acc]; ok {
			return nil, fmt.Errorf("line %d: address %s is already listed at line %d", line, fields[0], prev)
		}
		seen[acc] = line

		p := Permit{Account: acc, Remaining: defaultAllowance}

		if len(fields) > 1 {
			p.Remaining, err = strconv.ParseInt(fields[1], 10, 64)
			if err != nil || p.Remaining < 0 {
				return nil, fmt.Errorf("line %d: invalid allowance %q", line, fields[1])
			}
		}

		if len(fields) > 2 {
			if fields[2] != "precheck" {
				return nil, fmt.Errorf("line %d: unexpected flag %q", line, fields[2])
			}
			p.Precheck = true
		}

		res = append(res, p)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read allow-list: %w", err)
	}

	return res, nil
}
