package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/harborview/mls-comps/internal/api/client"
	"github.com/harborview/mls-comps/pkg/comps"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printPropertiesTable(properties []domain.Property) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tMLS\tADDRESS\tCITY\tPRICE\tBD/BA\tSQFT\tSTATUS\tDOM\n")
	for i := range properties {
		p := &properties[i]
		tw.writef("%s\t%s\t%s\t%s\t$%.0f\t%d/%.1f\t%.0f\t%s\t%d\n",
			p.ID,
			p.MLSNumber,
			truncate(p.AddressFull, 32),
			p.City,
			p.EffectivePrice(),
			p.Beds,
			p.Baths,
			p.LivingArea,
			p.StandardStatus,
			p.DaysOnMarket,
		)
	}
	return tw.finish()
}

func printPropertyDetail(p *domain.Property) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("MLS Number:\t%s\n", p.MLSNumber)
	tw.writef("Address:\t%s\n", p.AddressFull)
	tw.writef("City:\t%s, %s %s\n", p.City, p.State, p.PostalCode)
	tw.writef("List Price:\t$%.0f\n", p.ListPrice)
	if p.ClosePrice != nil {
		tw.writef("Close Price:\t$%.0f\n", *p.ClosePrice)
	}
	tw.writef("Beds/Baths:\t%d/%.1f\n", p.Beds, p.Baths)
	tw.writef("Living Area:\t%.0f sqft ($%.0f/sqft)\n", p.LivingArea, p.PricePerSqft())
	tw.writef("Year Built:\t%d\n", p.YearBuilt)
	tw.writef("Sub Type:\t%s\n", p.PropertySubType)
	tw.writef("Waterfront:\t%v\n", p.Waterfront)
	tw.writef("Status:\t%s\n", p.StandardStatus)
	tw.writef("Days on Market:\t%d\n", p.DaysOnMarket)
	if p.ItemURL != "" {
		tw.writef("URL:\t%s\n", p.ItemURL)
	}
	return tw.finish()
}

func printComparablesTable(resp *apiclient.ComparablesResponse) error {
	subject := &resp.Subject
	fmt.Printf("Subject: %s (%s) $%.0f %d/%.1f %.0f sqft\n\n",
		subject.AddressFull,
		subject.MLSNumber,
		subject.EffectivePrice(),
		subject.Beds,
		subject.Baths,
		subject.LivingArea,
	)

	tw := newTabWriter(os.Stdout)
	tw.writef("SCORE\tID\tADDRESS\tPRICE\tBD/BA\tSQFT\tSTATUS\n")
	for i := range resp.Comparables {
		c := &resp.Comparables[i]
		tw.writef("%.1f\t%s\t%s\t$%.0f\t%d/%.1f\t%.0f\t%s\n",
			c.Score,
			c.Property.ID,
			truncate(c.Property.AddressFull, 32),
			c.Property.EffectivePrice(),
			c.Property.Beds,
			c.Property.Baths,
			c.Property.LivingArea,
			c.Property.StandardStatus,
		)
	}
	if err := tw.finish(); err != nil {
		return err
	}

	fmt.Printf("\n%d comparables ranked from %d candidates.\n",
		len(resp.Comparables), resp.CandidateCount)
	return nil
}

func printSessionsTable(sessions []domain.CMASession) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tSUBJECT\tCONTACT\tSTATUS\tUPDATED\n")
	for i := range sessions {
		s := &sessions[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			truncate(s.Name, 30),
			s.SubjectID,
			s.ContactName,
			s.Status,
			s.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
	return tw.finish()
}

func printSessionDetail(resp *apiclient.SessionResponse) error {
	s := &resp.Session
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", s.ID)
	tw.writef("Name:\t%s\n", s.Name)
	tw.writef("Subject:\t%s\n", s.SubjectID)
	tw.writef("Contact:\t%s\n", s.ContactName)
	tw.writef("Status:\t%s\n", s.Status)
	if s.Notes != "" {
		tw.writef("Notes:\t%s\n", s.Notes)
	}
	tw.writef("Created:\t%s\n", s.CreatedAt.Format("2006-01-02 15:04"))
	if err := tw.finish(); err != nil {
		return err
	}

	if len(resp.Comparables) == 0 {
		return nil
	}

	fmt.Println()
	tw = newTabWriter(os.Stdout)
	tw.writef("#\tCOMP ID\tPROPERTY\tPRICE\tGRADE\tWEIGHT\n")
	for i := range resp.Comparables {
		c := &resp.Comparables[i]
		weight := "-"
		if c.UseCustomWeight {
			weight = fmt.Sprintf("%.2f (manual)", c.CustomWeight)
		}
		tw.writef("%d\t%s\t%s\t$%.0f\t%s\t%s\n",
			c.Position,
			c.ID,
			c.PropertyID,
			c.Price,
			c.Grade,
			weight,
		)
	}
	return tw.finish()
}

func printValuation(v *comps.Valuation) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Weighted Mid:\t$%.0f\n", v.WeightedMid)
	tw.writef("Unweighted Mid:\t$%.0f\n", v.UnweightedMid)
	tw.writef("Range:\t$%.0f - $%.0f\n", v.Low, v.High)
	tw.writef("Total Weight:\t%.2f\n", v.TotalWeight)
	if err := tw.finish(); err != nil {
		return err
	}

	fmt.Println()
	tw = newTabWriter(os.Stdout)
	tw.writef("COMP\tPRICE\tGRADE\tWEIGHT\tCONTRIBUTION\n")
	for i := range v.Rows {
		r := &v.Rows[i]
		tw.writef("%s\t$%.0f\t%s\t%.2f\t$%.0f\n",
			r.ID, r.Price, r.Grade, r.Weight, r.Contribution)
	}
	return tw.finish()
}

func printSnapshotsTable(snapshots []domain.MarketSnapshot) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CITY\tHEAT\tLABEL\tAVG DOM\tSP/LP\tSUPPLY\tABSORPTION\tACTIVE\tCLOSED\tDATE\n")
	for i := range snapshots {
		s := &snapshots[i]
		tw.writef("%s\t%d\t%s\t%.1f\t%.3f\t%.1f\t%.2f\t%d\t%d\t%s\n",
			s.City,
			s.HeatScore,
			s.HeatLabel,
			s.AvgDOM,
			s.SPLPRatio,
			s.MonthsSupply,
			s.AbsorptionRate,
			s.ActiveCount,
			s.ClosedCount,
			s.CreatedAt.Format("2006-01-02"),
		)
	}
	return tw.finish()
}

func printSnapshotDetail(s *domain.MarketSnapshot) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("City:\t%s\n", s.City)
	tw.writef("Heat Score:\t%d/100 (%s)\n", s.HeatScore, s.HeatLabel)
	tw.writef("Avg DOM:\t%.1f days\n", s.AvgDOM)
	tw.writef("SP/LP Ratio:\t%.3f\n", s.SPLPRatio)
	tw.writef("Months Supply:\t%.1f\n", s.MonthsSupply)
	tw.writef("Absorption Rate:\t%.2f\n", s.AbsorptionRate)
	tw.writef("Active Listings:\t%d\n", s.ActiveCount)
	tw.writef("Closed (window):\t%d\n", s.ClosedCount)
	tw.writef("Captured:\t%s\n", s.CreatedAt.Format("2006-01-02 15:04"))
	return tw.finish()
}

func printLeadsTable(leads []domain.Lead) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tEMAIL\tAGENT\tPROPERTY\tSOURCE\tCREATED\n")
	for i := range leads {
		l := &leads[i]
		agent := "-"
		if l.AgentID != nil {
			agent = *l.AgentID
		}
		property := "-"
		if l.PropertyID != nil {
			property = *l.PropertyID
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.Name,
			l.Email,
			agent,
			property,
			l.Source,
			l.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return tw.finish()
}

func printAgentsTable(agents []domain.Agent) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tEMAIL\tPHONE\tLICENSE\tACTIVE\n")
	for i := range agents {
		a := &agents[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\n",
			a.ID, a.Name, a.Email, a.Phone, a.LicenseNumber, a.Active)
	}
	return tw.finish()
}

func printSavedSearchesTable(searches []domain.SavedSearch) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tCONTACT\tFILTERS\tCREATED\n")
	for i := range searches {
		s := &searches[i]
		tw.writef("%s\t%s\t%s\t%d\t%s\n",
			s.ID,
			truncate(s.Name, 30),
			s.ContactEmail,
			len(s.Filters),
			s.CreatedAt.Format("2006-01-02"),
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tROWS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			rows,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
