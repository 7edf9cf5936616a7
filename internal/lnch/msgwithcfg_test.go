//    AestheticaGoMiner
//    Copyright: X Meng 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-meng/AestheticaGoMiner/internal/mm"
	"github.com/x-meng/AestheticaGoMiner/internal/vv"
)

func TestUpdateMessageMakerWithConfig(t *testing.T) {
	Config = BuildDefaultConfig()
	Config.LogLevel = mm.TMI
	Config.BlackAndWhite = true

	m := mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
	require.Equal(t, 0, m.LogLevel)

	UpdateMessageMakerWithConfig(m)
	require.Equal(t, mm.TMI, m.LogLevel)
	require.True(t, m.BlackAndWhite)
}
