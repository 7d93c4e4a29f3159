package builtin

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/pushkraft/internal/domain"
)

const (
	// DockerElement is contributed when the project has a Dockerfile.
	DockerElement = "docker"
	// ComposeElement is contributed for a compose file declaring services.
	ComposeElement = "compose"

	PropBaseImage = "baseImage"
	PropPorts     = "ports"
)

var envRef = regexp.MustCompile(`\$\{?([A-Za-z_][A-Za-z0-9_]*)`)

// buildArgs are the platform ARGs BuildKit predefines in every stage.
var buildArgs = map[string]bool{
	"BUILDPLATFORM":  true,
	"BUILDOS":        true,
	"BUILDARCH":      true,
	"BUILDVARIANT":   true,
	"TARGETPLATFORM": true,
	"TARGETOS":       true,
	"TARGETARCH":     true,
	"TARGETVARIANT":  true,
}

// DockerfileScanner reads the base image, exposed ports and environment
// variables declared or referenced by the root Dockerfile.
func DockerfileScanner() domain.Scanner {
	return domain.NewScanner(DockerElement, func(_ context.Context, p domain.Project, _ *domain.SdmContext, _ *domain.Analysis, _ domain.AnalysisOptions) (*domain.TechnologyElement, error) {
		name, ok, err := firstFile(p, "Dockerfile", "Containerfile")
		if err != nil || !ok {
			return nil, err
		}
		data, err := p.ReadFile(name)
		if err != nil {
			return nil, err
		}

		el := &domain.TechnologyElement{
			Name:       DockerElement,
			Tags:       []string{"docker", "container"},
			Properties: map[string]any{},
		}
		instructions := dockerInstructions(string(data))

		// ARG values are build arguments, not runtime environment.
		args := make(map[string]bool)
		for _, ins := range instructions {
			if ins.op == "ARG" && len(ins.args) > 0 {
				k, _, _ := strings.Cut(ins.args[0], "=")
				args[k] = true
			}
		}

		var ports []string
		for _, ins := range instructions {
			switch ins.op {
			case "FROM":
				if image := fromImage(ins.args); image != "" {
					el.Properties[PropBaseImage] = image
				}
				continue
			case "ARG":
				continue
			case "EXPOSE":
				ports = append(ports, ins.args...)
			case "ENV":
				el.ReferencedEnvironmentVariables = appendUnique(el.ReferencedEnvironmentVariables, envKeys(ins.args)...)
			}
			for _, m := range envRef.FindAllStringSubmatch(ins.raw, -1) {
				if args[m[1]] || buildArgs[m[1]] {
					continue
				}
				el.ReferencedEnvironmentVariables = appendUnique(el.ReferencedEnvironmentVariables, m[1])
			}
		}
		el.Properties[PropPorts] = ports
		return el, nil
	})
}

type dockerInstruction struct {
	op   string
	args []string
	raw  string
}

// dockerInstructions splits a Dockerfile into instructions, joining
// backslash continuations and dropping comments.
func dockerInstructions(content string) []dockerInstruction {
	var (
		out     []dockerInstruction
		pending strings.Builder
	)
	flush := func() {
		line := strings.TrimSpace(pending.String())
		pending.Reset()
		if line == "" {
			return
		}
		fields := strings.Fields(line)
		out = append(out, dockerInstruction{
			op:   strings.ToUpper(fields[0]),
			args: fields[1:],
			raw:  strings.Join(fields[1:], " "),
		})
	}
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasSuffix(trimmed, `\`) {
			pending.WriteString(strings.TrimSuffix(trimmed, `\`))
			pending.WriteString(" ")
			continue
		}
		pending.WriteString(trimmed)
		flush()
	}
	flush()
	return out
}

// fromImage returns the image of a FROM instruction, skipping flags such
// as --platform.
func fromImage(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "--") {
			return a
		}
	}
	return ""
}

// envKeys handles both "ENV KEY=value ..." and the legacy "ENV KEY value".
func envKeys(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	if !strings.Contains(args[0], "=") {
		return []string{args[0]}
	}
	var keys []string
	for _, a := range args {
		if k, _, ok := strings.Cut(a, "="); ok && k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
}

type composeService struct {
	Image       string      `yaml:"image"`
	Ports       []yaml.Node `yaml:"ports"`
	Environment yaml.Node   `yaml:"environment"`
}

// ComposeScanner turns compose services into backing services and collects
// their environment variable names.
func ComposeScanner() domain.Scanner {
	return domain.NewScanner(ComposeElement, func(_ context.Context, p domain.Project, _ *domain.SdmContext, _ *domain.Analysis, _ domain.AnalysisOptions) (*domain.TechnologyElement, error) {
		name, ok, err := firstFile(p, "compose.yaml", "compose.yml", "docker-compose.yaml", "docker-compose.yml")
		if err != nil || !ok {
			return nil, err
		}
		data, err := p.ReadFile(name)
		if err != nil {
			return nil, err
		}
		var cf composeFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if len(cf.Services) == 0 {
			return nil, nil
		}

		el := &domain.TechnologyElement{
			Name:       ComposeElement,
			Tags:       []string{"docker"},
			Services:   make(map[string]domain.Service, len(cf.Services)),
			Properties: map[string]any{"file": name},
		}
		names := make([]string, 0, len(cf.Services))
		for n := range cf.Services {
			names = append(names, n)
		}
		sort.Strings(names)

		for _, n := range names {
			svc := cf.Services[n]
			s := domain.Service{Type: serviceType(n, svc.Image), Image: svc.Image}
			if ports := composePorts(svc.Ports); len(ports) > 0 {
				s.Options = map[string]string{PropPorts: strings.Join(ports, ",")}
			}
			el.Services[n] = s

			keys, err := composeEnvKeys(&svc.Environment)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: service %s: %w", name, n, err)
			}
			el.ReferencedEnvironmentVariables = appendUnique(el.ReferencedEnvironmentVariables, keys...)
		}
		return el, nil
	})
}

// composePorts accepts the short ("8080:80") and long (target/published
// mapping) port syntax. Long entries render as published:target.
func composePorts(nodes []yaml.Node) []string {
	var out []string
	for _, n := range nodes {
		switch n.Kind {
		case yaml.ScalarNode:
			out = append(out, n.Value)
		case yaml.MappingNode:
			var target, published string
			for i := 0; i+1 < len(n.Content); i += 2 {
				switch n.Content[i].Value {
				case "target":
					target = n.Content[i+1].Value
				case "published":
					published = n.Content[i+1].Value
				}
			}
			switch {
			case target == "":
			case published == "":
				out = append(out, target)
			default:
				out = append(out, published+":"+target)
			}
		}
	}
	return out
}

// composeEnvKeys accepts both the list ("KEY=value") and map forms.
func composeEnvKeys(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(list))
		for _, item := range list {
			k, _, _ := strings.Cut(item, "=")
			keys = append(keys, k)
		}
		return keys, nil
	case yaml.MappingNode:
		keys := make([]string, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keys = append(keys, node.Content[i].Value)
		}
		return keys, nil
	default:
		return nil, nil
	}
}

// serviceType is the image's repository name without registry or tag,
// falling back to the service name for locally built services.
func serviceType(name, image string) string {
	if image == "" {
		return name
	}
	repo, _, _ := strings.Cut(image, "@")
	if i := strings.LastIndex(repo, ":"); i > strings.LastIndex(repo, "/") {
		repo = repo[:i]
	}
	return path.Base(repo)
}

func appendUnique(list []string, items ...string) []string {
	for _, it := range items {
		found := false
		for _, v := range list {
			if v == it {
				found = true
				break
			}
		}
		if !found {
			list = append(list, it)
		}
	}
	return list
}
