package selection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/types"
)

// Engine 动态 worker 选择与排序引擎。
//
// 单次请求是纯同步计算流水线：
// 提取 → 分类 → 相关性过滤 → 预算选择 → 依赖排序 → 资源估算。
// 除 Oracle 调用外没有阻塞点；注册表加载后只读，任意数量的请求
// 可以无锁并行执行。
type Engine struct {
	cfg      *config.Config
	registry *Registry

	extractor  *Extractor
	classifier *Classifier
	filter     *RelevanceFilter
	selector   *BudgetSelector
	sequencer  *Sequencer
	allocator  *Allocator

	metrics *Metrics
	logger  *zap.Logger
	tracer  trace.Tracer
}

// NewEngine 创建引擎。
// registry 为 nil 时由 cfg.Workers 构建；oracle 为 nil 时分类总是使用
// 默认判断；metrics 为 nil 时不记录指标。
func NewEngine(cfg *config.Config, registry *Registry, oracle Oracle, metrics *Metrics, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	logger = logger.With(zap.String("component", "selection_engine"))

	if registry == nil {
		var err error
		registry, err = NewRegistry(cfg.Capabilities(), logger)
		if err != nil {
			return nil, err
		}
	}

	classifier := NewClassifier(cfg, oracle, logger)
	classifier.onFallback = metrics.ObserveOracleFallback

	return &Engine{
		cfg:        cfg,
		registry:   registry,
		extractor:  NewExtractor(logger),
		classifier: classifier,
		filter:     NewRelevanceFilter(cfg),
		selector:   NewBudgetSelector(cfg.Engine, logger),
		sequencer:  NewSequencer(logger),
		allocator:  NewAllocator(cfg.Engine),
		metrics:    metrics,
		logger:     logger,
		tracer:     otel.Tracer("agentselect/selection"),
	}, nil
}

// Registry 返回引擎持有的注册表
func (e *Engine) Registry() *Registry {
	return e.registry
}

// SelectAndSequence 执行一次完整的选择流水线。
// 失败在内部以默认值替换吸收（分类器）或结构上不可能（排序器），
// 因此正常路径下 error 恒为 nil；保留返回值以符合接口惯例。
func (e *Engine) SelectAndSequence(ctx context.Context, task string, contextBag map[string]types.ContextValue, budget int) (*types.SelectionResult, error) {
	start := time.Now()
	traceID := uuid.NewString()

	ctx, span := e.tracer.Start(ctx, "selection.select_and_sequence",
		trace.WithAttributes(
			attribute.String("selection.trace_id", traceID),
			attribute.Int("selection.budget", budget),
		),
	)
	defer span.End()

	e.logger.Info("selection started",
		zap.String("trace_id", traceID),
		zap.Int("budget", budget),
	)

	// 1. 实体与上下文因子提取
	entities, contextFactors := e.extractor.Extract(task, contextBag)

	// 2. 复杂度分类（含 Oracle 调用与默认替换）
	complexity, analysis := e.classifier.Classify(ctx, task, contextBag, entities, contextFactors)
	span.SetAttributes(attribute.String("selection.complexity", complexity.String()))

	// 3. 相关性过滤
	candidates := e.filter.Filter(e.registry, task, complexity)

	// 4. 预算约束选择
	selected := e.selector.Select(candidates, budget, complexity)

	// 5. 依赖排序
	sequence := e.sequencer.Sequence(selected)

	// 6. 资源估算
	estimate := e.allocator.Estimate(sequence, complexity, budget)

	result := &types.SelectionResult{
		TraceID:    traceID,
		Task:       task,
		Complexity: complexity,
		Analysis:   analysis,
		Workers:    sequence,
		Estimate:   estimate,
	}

	span.SetAttributes(attribute.Int("selection.workers", len(sequence)))
	e.metrics.ObserveSelection(complexity.String(), len(sequence), time.Since(start))

	e.logger.Info("selection completed",
		zap.String("trace_id", traceID),
		zap.String("complexity", complexity.String()),
		zap.Int("workers", len(sequence)),
		zap.Int("adjusted_cost", estimate.AdjustedCost),
	)

	return result, nil
}

// Request 批量选择的单个请求
type Request struct {
	Task    string
	Context map[string]types.ContextValue
	Budget  int
}

// SelectAndSequenceBatch 并行执行多个独立的选择请求。
// 引擎流水线是纯计算且注册表只读，请求之间没有共享可变状态，
// 可直接并行；并发度由 engine.batch_concurrency 控制。
func (e *Engine) SelectAndSequenceBatch(ctx context.Context, requests []Request) ([]*types.SelectionResult, error) {
	results := make([]*types.SelectionResult, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Engine.BatchConcurrency)

	for i, req := range requests {
		g.Go(func() error {
			result, err := e.SelectAndSequence(gctx, req.Task, req.Context, req.Budget)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
