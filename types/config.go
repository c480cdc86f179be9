// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config 配置文件
type Config struct {
	Title   string            `toml:"Title"`
	Log     *Log              `toml:"log"`
	Store   *Store            `toml:"store" validate:"required"`
	Exec    *Exec             `toml:"exec" validate:"required"`
	Genesis []*GenesisAccount `toml:"genesis" validate:"dive,required"`
}

// Log 日志配置
type Log struct {
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	LogFile         string `toml:"logFile"`
	MaxFileSize     uint32 `toml:"maxFileSize"`
	MaxBackups      uint32 `toml:"maxBackups"`
	MaxAge          uint32 `toml:"maxAge"`
	LocalTime       bool   `toml:"localTime"`
	Compress        bool   `toml:"compress"`
	CallerFile      bool   `toml:"callerFile"`
	CallerFunction  bool   `toml:"callerFunction"`
}

// Store 存储配置
type Store struct {
	Name    string `toml:"name" validate:"oneof=leveldb goleveldb gobadgerdb memdb"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath" validate:"required_unless=Name memdb"`
	DbCache int32  `toml:"dbCache" validate:"gte=0"`
}

// Exec 执行器配置
type Exec struct {
	EnableStat bool                   `toml:"enableStat"`
	Sub        map[string]interface{} `toml:"sub"`
}

// GenesisAccount 创世时分配的余额
type GenesisAccount struct {
	Addr   string `toml:"addr" validate:"required"`
	Amount int64  `toml:"amount" validate:"gt=0"`
}

var validate = validator.New()

// InitCfg 从文件读取配置
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config "+path)
	}
	return initCfg(&cfg)
}

// InitCfgString 从字符串读取配置
func InitCfgString(s string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(s, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return initCfg(&cfg)
}

func initCfg(cfg *Config) (*Config, error) {
	cfg.fillDefault()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) fillDefault() {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "goleveldb"
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
}

// Validate 检查配置，返回所有的错误而不是第一个
func (cfg *Config) Validate() error {
	var result error
	if err := validate.Struct(cfg); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.Wrap(ErrConfig, err.Error())
		}
		for _, fe := range verrs {
			result = multierror.Append(result, fmt.Errorf("%w: %s failed on %s", ErrConfig, fe.Namespace(), fe.Tag()))
		}
	}
	for _, acc := range cfg.Genesis {
		if acc != nil && !CheckAmount(acc.Amount) {
			result = multierror.Append(result, fmt.Errorf("%w: genesis amount of %s out of range", ErrConfig, acc.Addr))
		}
	}
	if cfg.Exec != nil {
		for name, sub := range cfg.Exec.Sub {
			if _, ok := sub.(map[string]interface{}); !ok {
				result = multierror.Append(result, fmt.Errorf("%w: exec.sub.%s must be a table", ErrConfig, name))
			}
		}
	}
	return result
}

// GetSubConfig 每个执行器的子配置，编码成json交给执行器自己解析
func (cfg *Config) GetSubConfig() (map[string][]byte, error) {
	subs := make(map[string][]byte)
	if cfg.Exec == nil {
		return subs, nil
	}
	for name, sub := range cfg.Exec.Sub {
		data, err := json.Marshal(sub)
		if err != nil {
			return nil, errors.Wrap(err, "marshal sub config "+name)
		}
		subs[name] = data
	}
	return subs, nil
}

// MustDecode 把json子配置解码到cfg，失败panic，只在初始化时使用
func MustDecode(data []byte, cfg interface{}) {
	if data == nil {
		return
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		panic(err)
	}
}
