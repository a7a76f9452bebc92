package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	matModel "buildops_backend/internals/features/jobs/materials/model"
	helper "buildops_backend/internals/helpers"
)

func fmtDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return helper.FormatLocalDate(*t)
}

// WriteMaterialsCSV renders one job's material list. With groupByVendor the
// rows are bucketed under vendor header lines, purchase-order style, so the
// export can go straight to each supplier.
func WriteMaterialsCSV(w io.Writer, jobName string, materials []matModel.MaterialModel, groupByVendor bool) error {
	cw := csv.NewWriter(w)
	header := []string{"Material", "Qty", "Vendor", "Status", "Order By", "Delivery", "Pull By", "Notes"}

	writeRow := func(m matModel.MaterialModel) error {
		return cw.Write([]string{
			m.MaterialName,
			m.MaterialQty,
			m.MaterialVendor,
			m.MaterialStatus,
			fmtDate(m.MaterialOrderByDate),
			fmtDate(m.MaterialDeliveryDate),
			fmtDate(m.MaterialPullByDate),
			m.MaterialNotes,
		})
	}

	if err := cw.Write([]string{fmt.Sprintf("Materials: %s", jobName)}); err != nil {
		return err
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	if !groupByVendor {
		for _, m := range materials {
			if err := writeRow(m); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	byVendor := make(map[string][]matModel.MaterialModel)
	for _, m := range materials {
		vendor := strings.TrimSpace(m.MaterialVendor)
		if vendor == "" {
			vendor = "(no vendor)"
		}
		byVendor[vendor] = append(byVendor[vendor], m)
	}
	vendors := make([]string, 0, len(byVendor))
	for v := range byVendor {
		vendors = append(vendors, v)
	}
	sort.Strings(vendors)

	for _, vendor := range vendors {
		if err := cw.Write([]string{fmt.Sprintf("-- %s (%d items)", vendor, len(byVendor[vendor]))}); err != nil {
			return err
		}
		for _, m := range byVendor[vendor] {
			if err := writeRow(m); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// TimeEntryExportRow is the joined shape the time export writes.
type TimeEntryExportRow struct {
	UserName    string    `gorm:"column:user_name"`
	JobName     string    `gorm:"column:job_name"`
	WorkDate    time.Time `gorm:"column:work_date"`
	Hours       float64   `gorm:"column:hours"`
	Description string    `gorm:"column:description"`
}

// WriteTimeEntriesCSV renders a date-range export with a total row at the end.
func WriteTimeEntriesCSV(w io.Writer, from, to string, rows []TimeEntryExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{fmt.Sprintf("Time entries %s to %s", from, to)}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Date", "Crew", "Job", "Hours", "Description"}); err != nil {
		return err
	}

	total := 0.0
	for _, r := range rows {
		total += r.Hours
		if err := cw.Write([]string{
			helper.FormatLocalDate(r.WorkDate),
			r.UserName,
			r.JobName,
			fmt.Sprintf("%.2f", r.Hours),
			r.Description,
		}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"", "", "Total", fmt.Sprintf("%.2f", total), ""}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
