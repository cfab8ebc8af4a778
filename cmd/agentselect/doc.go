/*
Package main 提供 agentselect 命令行入口。

# 概述

cmd/agentselect 是选择引擎的可执行入口，读取任务描述与可选上下文，
运行一次完整的选择流水线并以 JSON 输出结果。程序支持 YAML 配置文件
加载、结构化日志（zap）以及可选的 OpenAI 兼容 Oracle 后端。

# 主要能力

  - 子命令：select（运行一次选择）、version、help
  - 上下文注入：-ctx key=value 可重复指定
  - Oracle 后端：通过 -oracle-url / ORACLE_API_KEY 启用，缺省时
    分类器使用默认判断
  - 构建注入：Version、BuildTime、GitCommit 通过 ldflags 设置
*/
package main
