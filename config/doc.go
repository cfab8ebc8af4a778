// Package config 提供选择引擎的声明式配置：worker 注册表、复杂度指标表、
// 相关性规则表与预算策略，以及「默认值 → YAML → 环境变量」的统一加载器。
//
// 分类器与相关性过滤器共用这里的关键词表，保证两处不会各自维护一份
// 漂移的副本。
package config
