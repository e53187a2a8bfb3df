package incremental

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/incjc/internal/adapters/fs"
	"go.trai.ch/incjc/internal/adapters/jdk"
	"go.trai.ch/incjc/internal/adapters/logger"
	"go.trai.ch/incjc/internal/adapters/metastore"
	"go.trai.ch/incjc/internal/adapters/telemetry"
	"go.trai.ch/incjc/internal/core/ports"
)

// NodeID is the unique identifier for the incremental builder Graft node.
const NodeID graft.ID = "engine.incremental"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			metastore.NodeID,
			fs.FinderNodeID,
			fs.HasherNodeID,
			fs.StagerNodeID,
			jdk.CompilerNodeID,
			jdk.AnalyzerNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			store, err := graft.Dep[ports.MetaStore](ctx)
			if err != nil {
				return nil, err
			}
			finder, err := graft.Dep[ports.FileFinder](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}
			analyzer, err := graft.Dep[ports.Analyzer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(store, finder, hasher, stager, compiler, analyzer, log, tracer), nil
		},
	})
}
