// Package bom injects the consolidated bill of materials into the parent
// POM document: the merged property set plus one dependencyManagement block
// whose managed versions are expressed as ${artifactId.version} property
// references.
package bom

import (
	"sort"

	"github.com/beevik/etree"

	"github.com/indaco/pombom/internal/pom"
)

// Inject mutates parent in place. Properties are appended under the
// project's properties element sorted by name; managed dependencies are
// emitted sorted by groupId then artifactId; one <artifactId>.version
// property is appended per distinct artifactId. When the same artifactId
// appears in multiple groups, the last group in sorted order wins for that
// property's value. The dependencyManagement block becomes the last child
// of the project element.
func Inject(parent *pom.Document, props pom.Properties, deps pom.DependencyGroups) {
	project := parent.Project()

	properties := project.SelectElement(pom.ElemProperties)
	if properties == nil {
		properties = project.CreateElement(pom.ElemProperties)
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		properties.CreateElement(name).SetText(props[name])
	}

	management := etree.NewElement(pom.ElemDependencyManagement)
	dependencies := management.CreateElement(pom.ElemDependencies)

	artifactVersions := make(map[string]string)
	groupIDs := make([]string, 0, len(deps))
	for groupID := range deps {
		groupIDs = append(groupIDs, groupID)
	}
	sort.Strings(groupIDs)

	for _, groupID := range groupIDs {
		artifacts := deps[groupID]
		artifactIDs := make([]string, 0, len(artifacts))
		for artifactID := range artifacts {
			artifactIDs = append(artifactIDs, artifactID)
		}
		sort.Strings(artifactIDs)

		for _, artifactID := range artifactIDs {
			dependency := dependencies.CreateElement(pom.ElemDependency)
			dependency.CreateElement(pom.ElemGroupID).SetText(groupID)
			dependency.CreateElement(pom.ElemArtifactID).SetText(artifactID)
			dependency.CreateElement(pom.ElemVersion).SetText("${" + artifactID + ".version}")

			if version := artifacts[artifactID]; version != nil {
				artifactVersions[artifactID] = *version
			} else {
				artifactVersions[artifactID] = ""
			}
		}
	}

	artifactIDs := make([]string, 0, len(artifactVersions))
	for artifactID := range artifactVersions {
		artifactIDs = append(artifactIDs, artifactID)
	}
	sort.Strings(artifactIDs)
	for _, artifactID := range artifactIDs {
		properties.CreateElement(artifactID + ".version").SetText(artifactVersions[artifactID])
	}

	project.AddChild(management)
}
