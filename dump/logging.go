package dump

import "github.com/streamingfast/logging"

var zlog, tracer = logging.PackageLogger("dumpx", "github.com/streamingfast/dumpx/dump")
