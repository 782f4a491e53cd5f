package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/catalog"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/filter"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/render"
)

type options struct {
	query      string
	minSalary  int
	experience string
	location   bool
	seedFile   string
	htmlOut    string
}

func main() {
	var opts options
	flag.StringVar(&opts.query, "query", "", "Title, company or technology to search for")
	flag.IntVar(&opts.minSalary, "min-salary", 0, "Minimum salary in thousands (0-500, step 50)")
	flag.StringVar(&opts.experience, "experience", "all", "Experience band: all, junior, middle, senior")
	flag.BoolVar(&opts.location, "location", false, "Sort results by distance")
	flag.StringVar(&opts.seedFile, "seed", "", "Optional YAML file with extra postings")
	flag.StringVar(&opts.htmlOut, "html", "", "Write the rendered page to this file")
	flag.Parse()

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	band, err := filter.ParseExperience(opts.experience)
	if err != nil {
		return err
	}

	sources := []catalog.Source{catalog.Builtin()}
	if opts.seedFile != "" {
		sources = append(sources, catalog.FileSource{Path: opts.seedFile})
	}
	seed, err := catalog.New(sources...).Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	criteria := filter.Criteria{
		Query:              opts.query,
		MinSalaryThousands: filter.ClampSalary(opts.minSalary),
		Experience:         band,
		LocationEnabled:    opts.location,
	}
	jobs := filter.Apply(seed, criteria)
	if criteria.LocationEnabled {
		jobs = filter.SortByDistance(jobs)
	}

	if err := printTable(out, criteria, jobs); err != nil {
		return err
	}

	if opts.htmlOut != "" {
		f, err := os.Create(opts.htmlOut)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer f.Close()
		if err := render.Render(f, render.NewPage(criteria, jobs)); err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
	}
	return nil
}

func printTable(out io.Writer, c filter.Criteria, jobs []models.Job) error {
	floor := "any"
	if c.MinSalaryThousands > 0 {
		floor = humanize.Comma(int64(c.MinSalaryThousands*1000)) + " ₽"
	}
	header := fmt.Sprintf("Найдено вакансий: %d (query=%q, min salary=%s, experience=%s)",
		len(jobs), c.Query, floor, c.Experience)
	fmt.Fprintln(out, header)

	if len(jobs) == 0 {
		fmt.Fprintln(out, "Вакансии не найдены")
		return nil
	}

	data := pterm.TableData{{"ID", "Title", "Company", "Salary", "Experience", "Distance", "Tags"}}
	for _, job := range jobs {
		distance := ""
		if c.LocationEnabled {
			distance = job.Distance
		}
		data = append(data, []string{
			fmt.Sprint(job.ID),
			job.Title,
			job.Company,
			job.Salary,
			job.Experience,
			distance,
			strings.Join(job.Tags, ", "),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	_, err = fmt.Fprintln(out, table)
	return err
}
