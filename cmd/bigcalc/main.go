// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bigcalc is a command line calculator for binary fixed-point numbers.
//
//	bigcalc div 1 3 --prec 8        # 0.33
//	bigcalc pi --prec 200 --digits 50
//	bigcalc sqrt 2 --format bin --prec 16
//
// Settings can also be read from a configuration file (--config) or from
// BIGCALC_ prefixed environment variables.
package main

import (
	"os"

	"github.com/golang/glog"

	"github.com/db47h/bigfix/cmd/bigcalc/command"
)

func main() {
	defer glog.Flush()
	if err := command.Root.Execute(); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}
