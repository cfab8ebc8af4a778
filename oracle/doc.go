// Package oracle 提供复杂度 Oracle 与叙事生成器的 Provider 客户端。
//
// Oracle 是引擎中唯一的外部调用点：调用受超时与本地限流约束，
// 失败以结构化错误返回，由上游分类器替换默认判断，保证分类永不失败。
package oracle
