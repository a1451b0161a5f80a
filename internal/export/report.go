package export

import (
	"fmt"
	"strings"

	"github.com/mayankpokhriyal/neuronap/internal/domain"
)

// faqs is static product copy appended to every exported report.
var faqs = []string{
	"Sleep and Immune Function: Sleep boosts your immune system big time. Studies say missing 7 hours in a week makes you way more likely to catch a cold!",
	"How do Sleep Need and Sleep Debt work? Everyone needs 7-9 hours usually. Sleep debt is what you owe your body over 2 weeks - keep it under 5 hours to feel great.",
	"Circadian Rhythm: Your energy goes up and down daily - peaks in the morning and evening, dips midday. It's tied to your sleep habits and body clock.",
	"Alcohol and Sleep: Booze might help you nod off, but it messes with deep sleep. Skip it 3-4 hours before bed.",
	"Naps: A quick nap (15-25 min) during your dip can recharge you without ruining night sleep.",
	"How do I change my sleep schedule? Use bright light in the morning, cut caffeine 10 hours before bed, and keep a cozy sleep space.",
}

// RenderReport formats an already-computed sleep report as a markdown
// document. Pure formatting: no computation happens here.
func RenderReport(userName string, report *domain.SleepReport, logs []domain.SleepLog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s's Sleeping Report\n\n", userName)

	b.WriteString("## Latest Sleep Log\n\n")
	fmt.Fprintf(&b, "- Sleep Debt: %v hours\n", report.SleepDebt)
	fmt.Fprintf(&b, "- Midpoint: %s\n", report.Rhythm.Midpoint)
	fmt.Fprintf(&b, "- Chronotype: %s\n", report.Rhythm.Chronotype)
	fmt.Fprintf(&b, "- Sleep Quality: %d/10\n\n", report.Quality)

	fmt.Fprintf(&b, "## Average Over %d Logs\n\n", report.Averages.LogCount)
	fmt.Fprintf(&b, "- Avg Sleep Debt: %v hours\n", report.Averages.AvgDebt)
	fmt.Fprintf(&b, "- Avg Chronotype: %s\n", report.Averages.AvgChronotype)
	fmt.Fprintf(&b, "- Avg Energy: %v/10\n\n", report.Averages.AvgEnergy)

	b.WriteString("## Daily Rhythm\n\n")
	b.WriteString("| Marker | Time |\n|---|---|\n")
	fmt.Fprintf(&b, "| Wake Up | %s |\n", report.Rhythm.WakeTime)
	fmt.Fprintf(&b, "| Morning Peak | %s |\n", report.Rhythm.MorningPeak)
	fmt.Fprintf(&b, "| Afternoon Dip | %s |\n", report.Rhythm.AfternoonDip)
	fmt.Fprintf(&b, "| Evening Peak | %s |\n", report.Rhythm.EveningPeak)
	fmt.Fprintf(&b, "| Bedtime | %s |\n\n", report.Rhythm.Bedtime)

	b.WriteString("## Suggestions\n\n")
	for _, tip := range report.Recommendations {
		fmt.Fprintf(&b, "- %s\n", tip)
	}
	b.WriteString("\n")

	if len(logs) > 0 {
		b.WriteString("## Past Logs\n\n")
		for i, log := range logs {
			fmt.Fprintf(&b, "- Log %d: Sleep %s - Wake %s, Energy %d\n", i+1, log.SleepTime, log.WakeTime, log.EnergyLevel)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Frequently Asked Questions\n\n")
	for _, faq := range faqs {
		fmt.Fprintf(&b, "- %s\n", faq)
	}

	return b.String()
}

// Filename returns the attachment filename for a user's exported report.
func Filename(userName string) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(userName), " ", "_"))
	if name == "" {
		name = "user"
	}
	return fmt.Sprintf("neuronap_report_%s.md", name)
}
