package jdk

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incjc/internal/adapters/config"
	"go.trai.ch/incjc/internal/adapters/logger"
	"go.trai.ch/incjc/internal/core/domain"
	"go.trai.ch/incjc/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the tool runner Graft node.
	RunnerNodeID graft.ID = "adapter.jdk.runner"
	// CompilerNodeID is the unique identifier for the compiler Graft node.
	CompilerNodeID graft.ID = "adapter.jdk.compiler"
	// AnalyzerNodeID is the unique identifier for the analyzer Graft node.
	AnalyzerNodeID graft.ID = "adapter.jdk.analyzer"
)

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log, Toolchain{Home: cfg.JDKHome}), nil
		},
	})

	graft.Register(graft.Node[ports.Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RunnerNodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			runner, err := graft.Dep[*Runner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(runner, cfg.Classpath, cfg.CompilerArgs), nil
		},
	})

	graft.Register(graft.Node[ports.Analyzer]{
		ID:        AnalyzerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RunnerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Analyzer, error) {
			runner, err := graft.Dep[*Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAnalyzer(runner, log, DefaultBatchSize), nil
		},
	})
}
