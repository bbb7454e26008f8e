// Package pipeline runs the chart-generation batch: for each chart family,
// locate the result file, recover code parameters, load the table, render
// the semilog chart and persist its artifacts. Charts are independent units
// processed sequentially; the first failure aborts the run and already
// written artifacts are left in place.
package pipeline

import (
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"

	"github.com/user/ecc_plotter_go/internal/chart"
	"github.com/user/ecc_plotter_go/internal/config"
	"github.com/user/ecc_plotter_go/internal/report"
	"github.com/user/ecc_plotter_go/internal/results"
)

type Pipeline struct {
	cfg    *config.Config
	policy results.SelectPolicy
}

func New(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := results.ParsePolicy(cfg.Select)
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, policy: policy}, nil
}

// Run renders every selected chart family in catalog order.
func (pl *Pipeline) Run() error {
	families, err := pl.selectFamilies()
	if err != nil {
		return err
	}

	var pages []report.Page
	for _, fam := range families {
		p, art, err := pl.renderFamily(fam)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"chart": fam.Name, "png": art.PNG, "svg": art.SVG}).Info("chart written")

		if pl.cfg.Report != "" {
			png, err := chart.PNGBytes(p)
			if err != nil {
				return err
			}
			pages = append(pages, report.Page{Title: fam.Title, PNG: png})
		}
	}

	if pl.cfg.Report != "" {
		if err := report.Build(pl.cfg.Report, pages); err != nil {
			return err
		}
		log.WithField("report", pl.cfg.Report).Info("summary report written")
	}
	return nil
}

// selectFamilies resolves the configured chart subset against the catalog,
// keeping catalog order. An unknown chart name is a configuration mistake.
func (pl *Pipeline) selectFamilies() ([]chart.Family, error) {
	all := chart.Families()
	if len(pl.cfg.Charts) == 0 {
		return all, nil
	}
	byName := make(map[string]bool, len(pl.cfg.Charts))
	for _, name := range pl.cfg.Charts {
		byName[name] = false
	}
	var selected []chart.Family
	for _, fam := range all {
		if _, ok := byName[fam.Name]; ok {
			byName[fam.Name] = true
			selected = append(selected, fam)
		}
	}
	for name, found := range byName {
		if !found {
			return nil, errors.Errorf("unknown chart %q", name)
		}
	}
	return selected, nil
}

func (pl *Pipeline) renderFamily(fam chart.Family) (*plot.Plot, chart.Artifact, error) {
	path, err := results.Locate(pl.cfg.Results, fam.Prefix, pl.policy)
	if err != nil {
		return nil, chart.Artifact{}, err
	}
	params := pl.paramsFor(fam, filepath.Base(path))
	log.WithFields(log.Fields{"chart": fam.Name, "file": path, "params": params != nil}).Info("result file selected")

	table, err := results.Load(path, fam.RequiredColumns())
	if err != nil {
		return nil, chart.Artifact{}, err
	}
	rendered, err := chart.Render(fam.Spec(params), table)
	if err != nil {
		return nil, chart.Artifact{}, err
	}
	art, err := chart.WriteArtifacts(rendered, pl.cfg.Images, fam.OutputStem)
	if err != nil {
		return nil, chart.Artifact{}, err
	}
	return rendered, art, nil
}

// paramsFor resolves the code parameter record for a coded family: the
// explicit configured record wins, the filename pattern is the fallback and
// absence of both is valid.
func (pl *Pipeline) paramsFor(fam chart.Family, filename string) *results.SchemeParams {
	if !fam.Coded {
		return nil
	}
	if pl.cfg.RSParams != nil {
		return pl.cfg.RSParams
	}
	if p, ok := results.ExtractParams(filename); ok {
		return &p
	}
	return nil
}
