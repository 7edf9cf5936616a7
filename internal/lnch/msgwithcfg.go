//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/x-meng/AestheticaGoMiner/internal/mm"
)

// the pipeline packages each own a MessageMaker built with defaults; once the
// configuration has been read those makers are stale and need the real values

// UpdateMessageMakerWithConfig - push the active configuration into a MessageMaker
func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.LogLevel = Config.LogLevel
	m.BlackAndWhite = Config.BlackAndWhite
}
