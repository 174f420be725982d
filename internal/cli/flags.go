package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a YYYY-MM-DD flag. It stays nil until the flag is set.
type dateValue struct {
	date *time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string {
	if d.date == nil {
		return ""
	}
	return d.date.Format(domain.DateLayout)
}

func (d *dateValue) Set(s string) error {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	d.date = &t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// dateFlag registers a date flag on fs and returns its value holder.
func dateFlag(fs *pflag.FlagSet, name, usage string) *dateValue {
	v := &dateValue{}
	fs.Var(v, name, usage+" (YYYY-MM-DD)")
	return v
}
