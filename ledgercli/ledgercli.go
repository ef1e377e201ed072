// Package ledgercli queries a journal through the ledger command line tool.
package ledgercli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/etnz/pricedb/date"
	log "github.com/sirupsen/logrus"
)

// StatsDateFormat is the strftime pattern of dates in `ledger stats` output.
const StatsDateFormat = "%y-%b-%d"

var timePeriod = regexp.MustCompile(`Time\s+period:\s*([\w\-/]+)\s+to`)

// CLI runs the ledger executable.
type CLI struct {
	Bin  string // executable, "ledger" if empty
	File string // journal passed with -f, ledger's own default if empty
}

// Commodities runs `ledger commodities`.
func (c CLI) Commodities(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "commodities")
	if err != nil {
		return nil, err
	}
	return ParseCommodities(out), nil
}

// FirstDate runs `ledger stats` and returns the start of its time period.
func (c CLI) FirstDate(ctx context.Context) (date.Date, error) {
	out, err := c.run(ctx, "stats")
	if err != nil {
		return date.Date{}, err
	}
	return ParseStats(out)
}

func (c CLI) run(ctx context.Context, args ...string) ([]byte, error) {
	bin := c.Bin
	if bin == "" {
		bin = "ledger"
	}
	if c.File != "" {
		args = append([]string{"-f", c.File}, args...)
	}
	log.Debugf("running %s %s", bin, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w: %s", bin, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// ParseCommodities reads one commodity per line. Blank lines are ignored.
//
// Quoted commodities ("VANGUARD 500") are unquoted; price lines quote them again.
func ParseCommodities(out []byte) []string {
	var commodities []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		c := strings.TrimSpace(scanner.Text())
		c = strings.Trim(c, `"`)
		if c == "" {
			continue
		}
		commodities = append(commodities, c)
	}
	return commodities
}

// ParseStats extracts the first date of the "Time period: <start> to <end>" line.
func ParseStats(out []byte) (date.Date, error) {
	m := timePeriod.FindSubmatch(out)
	if m == nil {
		return date.Date{}, fmt.Errorf("no time period in ledger stats output")
	}
	d, err := date.ParseFormat(StatsDateFormat, string(m[1]))
	if err != nil {
		// ledger honours --date-format, try the usual ones too.
		for _, pattern := range []string{"%Y/%m/%d", "%Y-%m-%d"} {
			if d, perr := date.ParseFormat(pattern, string(m[1])); perr == nil {
				return d, nil
			}
		}
		return date.Date{}, fmt.Errorf("cannot read ledger stats time period: %w", err)
	}
	return d, nil
}
