// Command recommend prints herbal remedies for a symptom description using
// the compiled-in knowledge base or a YAML table.
//
//	recommend -type primary "headache and stress"
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"ayurvignana/internal/matcher"
	"ayurvignana/internal/models"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kbPath := fs.String("kb", os.Getenv("KNOWLEDGE_FILE"), "YAML knowledge base file (default: compiled-in table)")
	category := fs.String("type", "", "only show remedies of this type, e.g. primary")
	asJSON := fs.Bool("json", false, "print the API response shape as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	kb, err := matcher.Load(*kbPath)
	if err != nil {
		fmt.Fprintf(stderr, "recommend: %v\n", err)
		return 1
	}

	remedies, err := matcher.Match(strings.Join(fs.Args(), " "), kb)
	if err != nil {
		if errors.Is(err, matcher.ErrEmptyInput) {
			fmt.Fprintln(stderr, "recommend: no symptoms given")
			fs.Usage()
			return 2
		}
		fmt.Fprintf(stderr, "recommend: %v\n", err)
		return 1
	}
	remedies = models.FilterRemedies(remedies, *category)

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(models.RecommendResponse{Recommendations: remedies}); err != nil {
			fmt.Fprintf(stderr, "recommend: %v\n", err)
			return 1
		}
		return 0
	}

	if len(remedies) == 0 {
		fmt.Fprintln(stdout, "No specific recommendations found.")
		return 0
	}
	for _, r := range remedies {
		fmt.Fprintf(stdout, "%s [%s]\n  Dosage: %s\n  %s\n", r.Name, r.Category, r.Dosage, r.Description)
	}
	return 0
}
