// Command ecs-stress-gen emits the component and system fixtures the
// ecs-stress tool runs against. The output is gofmt'd through
// golang.org/x/tools/imports and checked in next to the tool.
//
// Usage:
//
//	go run ./cmd/ecs-stress-gen -components 16 -systems 8 -out cmd/ecs-stress/generated.go
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by ecs-stress-gen. DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/tessera/ecs"
)

const (
	componentCount = {{.Components}}
	systemCount    = {{.Systems}}
)
{{range $i := seq .Components}}
type StressComp{{$i}} struct {
	A, B float32
	C    int32
}
{{end}}
// RegisterAllGeneratedComponents pins every generated component type so
// component IDs are assigned in a deterministic order.
func RegisterAllGeneratedComponents(w *ecs.World) {
{{range $i := seq .Components}}	ecs.RegisterComponent[StressComp{{$i}}](w)
{{end}}}

// SpawnRandomEntity creates an entity and makes n random picks among the
// generated components; a repeated pick overwrites, so it may carry fewer
// than n.
func SpawnRandomEntity(w *ecs.World, n int) ecs.Entity {
	e := w.Spawn()
	for i := 0; i < n; i++ {
		switch rand.Intn(componentCount) {
{{range $i := seq .Components}}		case {{$i}}:
			ecs.Set(e, StressComp{{$i}}{A: rand.Float32(), B: rand.Float32(), C: rand.Int31n(1000)})
{{end}}		}
	}
	return e
}
{{range $i := seq .Systems}}
type StressSystem{{$i}} struct {
	Pairs ecs.Query2[StressComp{{pairA $i}}, StressComp{{pairB $i}}]
}

func (s *StressSystem{{$i}}) Execute(frame *ecs.UpdateFrame) {
	s.Pairs.Each(func(_ ecs.EntityID, a *StressComp{{pairA $i}}, b *StressComp{{pairB $i}}) {
		a.A += b.B * float32(frame.DeltaTime)
		b.C = a.C + 1
	})
}
{{end}}
// RegisterAllGeneratedSystems registers every generated system.
func RegisterAllGeneratedSystems(s *ecs.Scheduler) {
{{range $i := seq .Systems}}	s.Register(&StressSystem{{$i}}{})
{{end}}}
`

func main() {
	components := flag.Int("components", 16, "number of component types to generate")
	systems := flag.Int("systems", 8, "number of systems to generate")
	out := flag.String("out", "cmd/ecs-stress/generated.go", "output file path")
	flag.Parse()

	if *components < 2 {
		log.Fatal("need at least 2 components to build system joins")
	}

	fm := template.FuncMap{
		"seq": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i
			}
			return s
		},
		"pairA": func(i int) int { return (2 * i) % *components },
		"pairB": func(i int) int { return (2*i + 1) % *components },
	}

	tmpl, err := template.New("generated").Funcs(fm).Parse(fileTemplate)
	if err != nil {
		log.Fatalf("parse template: %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Components int
		Systems    int
	}{*components, *systems})
	if err != nil {
		log.Fatalf("execute template: %v", err)
	}

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format output: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("wrote %s (%d components, %d systems)", *out, *components, *systems)
}
