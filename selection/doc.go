// Package selection 实现动态 worker 选择与排序引擎。
//
// 给定任务描述、上下文包与信用预算，引擎（1）对任务复杂度分级，
// （2）筛选与任务相关的 worker，（3）在复杂度放大后的预算内按层
// 优先级裁剪集合，（4）按依赖关系拓扑排序产出执行顺序，
// （5）计算复杂度调整后的资源估算。
//
// 引擎只决定运行哪些 worker、以什么顺序、预计花费多少；
// 不执行 worker，不管理执行并发，不跨请求持久化任何状态。
package selection
