// Package main provides entry point for enum generator
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/go-pkgz/listview/internal/generator"
)

// allow mocking os.Exit in tests
var osExit = os.Exit

func main() {
	typeFlag := flag.String("type", "", "type name (must be lowercase)")
	pathFlag := flag.String("path", "", "output directory path (default: same as source)")
	lowerFlag := flag.Bool("lower", false, "use lower case for marshaled/unmarshaled values")
	sqlFlag := flag.Bool("sql", false, "generate database/sql Scanner and Valuer")
	bsonFlag := flag.Bool("bson", false, "generate mongo bson marshaling")
	yamlFlag := flag.Bool("yaml", false, "generate yaml.v3 marshaling")
	indicatorFlag := flag.Bool("indicator", false, "generate Color() from enum:indicator directives")
	helpFlag := flag.Bool("help", false, "show usage")
	versionFlag := flag.Bool("version", false, "print version")
	flag.Parse()

	// collect build info (version), new in go 1.24
	buildInfo := "dev"
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" {
			buildInfo = info.Main.Version
		}
	}

	if *helpFlag {
		showUsage()
		osExit(0)
		return
	}
	if *versionFlag {
		fmt.Printf("enum generator %s\n", buildInfo)
		osExit(0)
		return
	}

	gen, err := generator.New(*typeFlag, *pathFlag)
	if err != nil {
		fmt.Printf("%v\n", err)
		showUsage()
		osExit(1)
		return
	}

	gen.SetLowerCase(*lowerFlag)
	gen.SetGenerateSQL(*sqlFlag)
	gen.SetGenerateBSON(*bsonFlag)
	gen.SetGenerateYAML(*yamlFlag)
	gen.SetGenerateIndicator(*indicatorFlag)

	if err := gen.Parse("."); err != nil {
		fmt.Printf("%v\n", err)
		osExit(1)
		return
	}

	if err := gen.Generate(); err != nil {
		fmt.Printf("%v\n", err)
		osExit(1)
		return
	}
}

func showUsage() {
	fmt.Printf("usage: enumgen -type <type> [-path <path>] [-lower] [-sql] [-bson] [-yaml] [-indicator] [-version]\n")
	fmt.Printf("  -type <type>    type name (must be lowercase)\n")
	fmt.Printf("  -path <path>    output directory path (default: same as source)\n")
	fmt.Printf("  -lower          use lower case for marshaled/unmarshaled values\n")
	fmt.Printf("  -sql            generate database/sql Scanner and Valuer\n")
	fmt.Printf("  -bson           generate mongo bson marshaling\n")
	fmt.Printf("  -yaml           generate yaml.v3 marshaling\n")
	fmt.Printf("  -indicator      generate Color() from enum:indicator directives\n")
	fmt.Printf("  -version        print version\n")
}
