// Package runner orchestrates a consolidation run: it scans the parent POM
// for modules, then for each module in document order scans dependencies,
// merges them into the running map, strips the module document, and writes
// the stripped copy. The parent with the injected BOM is written last.
// Everything is sequential; the dependency and property maps are only
// mutated by this single flow.
package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/indaco/pombom/internal/bom"
	"github.com/indaco/pombom/internal/core"
	"github.com/indaco/pombom/internal/merger"
	"github.com/indaco/pombom/internal/pom"
	"github.com/indaco/pombom/internal/scanner"
	"github.com/indaco/pombom/internal/stripper"
)

// DefaultOutputName is the filename written alongside each original POM.
const DefaultOutputName = "pom_new.xml"

// Options configures a consolidation run.
type Options struct {
	// Dir is the base directory containing the parent pom.xml.
	Dir string

	// Output is the output filename written next to each original POM.
	// Defaults to DefaultOutputName.
	Output string

	// DryRun performs the full scan and merge without writing any file.
	DryRun bool

	// Report receives merge and skip diagnostics as they happen.
	// May be nil.
	Report func(merger.Event)
}

// Summary describes what a run did.
type Summary struct {
	// Processed lists the module names that were scanned and stripped.
	Processed []string

	// Skipped lists module names without a pom.xml.
	Skipped []string

	// Dependencies is the number of managed (groupId, artifactId) pairs.
	Dependencies int

	// Properties is the number of properties consolidated into the parent.
	Properties int

	// ParentOutput is the path of the written parent POM, empty on dry runs.
	ParentOutput string
}

// Runner executes consolidation runs against a filesystem.
type Runner struct {
	fs   core.FileSystem
	opts Options
}

// New creates a Runner. A zero Output in opts falls back to DefaultOutputName.
func New(fsys core.FileSystem, opts Options) *Runner {
	if opts.Output == "" {
		opts.Output = DefaultOutputName
	}
	return &Runner{fs: fsys, opts: opts}
}

// Run executes one consolidation pass over opts.Dir. The first unrecoverable
// error (unparsable XML, dependency missing required fields, write failure)
// aborts the run; missing module POMs are skipped with a warning.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	parentPath := filepath.Join(r.opts.Dir, "pom.xml")
	parent, err := pom.Load(ctx, r.fs, parentPath)
	if err != nil {
		return nil, err
	}

	props := make(pom.Properties)
	deps := make(pom.DependencyGroups)

	project := parent.Project()
	if groupID := pom.ChildText(project, pom.ElemGroupID); groupID != "" {
		props["project.groupId"] = groupID
	}
	if version := pom.ChildText(project, pom.ElemVersion); version != "" {
		props["project.version"] = version
	}

	rootVersionProps, _ := scanner.New(parent).ScanProperties()
	props.Merge(rootVersionProps)

	summary := &Summary{}
	for _, module := range collectModules(project) {
		if err := r.processModule(ctx, module, props, deps, summary); err != nil {
			return nil, err
		}
	}

	bom.Inject(parent, props, deps)
	summary.Dependencies = deps.Count()
	summary.Properties = len(props)

	if r.opts.DryRun {
		return summary, nil
	}

	parent.Indent(2)
	parentOutput := filepath.Join(r.opts.Dir, r.opts.Output)
	if err := parent.WriteTo(ctx, r.fs, parentOutput); err != nil {
		return nil, err
	}
	summary.ParentOutput = parentOutput

	return summary, nil
}

// processModule runs the scan, merge, strip, write cycle for one module.
// The module's version properties join the accumulated parent scope only
// after its own dependencies are merged.
func (r *Runner) processModule(ctx context.Context, module string, props pom.Properties, deps pom.DependencyGroups, summary *Summary) error {
	modulePath := filepath.Join(r.opts.Dir, module, "pom.xml")
	if _, err := r.fs.Stat(ctx, modulePath); err != nil {
		r.report(merger.Event{
			Level:   merger.LevelWarn,
			Message: fmt.Sprintf("%s: no pom.xml found, skipping module", module),
		})
		summary.Skipped = append(summary.Skipped, module)
		return nil
	}

	doc, err := pom.Load(ctx, r.fs, modulePath)
	if err != nil {
		return err
	}

	sc := scanner.New(doc)
	groups, err := sc.ScanDependencies(props)
	if err != nil {
		return err
	}

	for _, event := range merger.Merge(deps, groups, module, props) {
		r.report(event)
	}

	versionProps, otherProps := sc.ScanProperties()
	props.Merge(versionProps)

	stripSet := make(pom.Properties, len(versionProps)+len(otherProps))
	stripSet.Merge(otherProps)
	stripSet.Merge(versionProps)
	stripper.Strip(doc, stripSet)

	if !r.opts.DryRun {
		output := filepath.Join(r.opts.Dir, module, r.opts.Output)
		if err := doc.WriteTo(ctx, r.fs, output); err != nil {
			return err
		}
	}

	summary.Processed = append(summary.Processed, module)
	return nil
}

func (r *Runner) report(event merger.Event) {
	if r.opts.Report != nil {
		r.opts.Report(event)
	}
}

// collectModules returns the text of every module element in document order.
func collectModules(el *etree.Element) []string {
	var modules []string
	for _, child := range el.ChildElements() {
		if child.Tag == pom.ElemModule {
			if name := pom.Text(child); name != "" {
				modules = append(modules, name)
			}
			continue
		}
		modules = append(modules, collectModules(child)...)
	}
	return modules
}
