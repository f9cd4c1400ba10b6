//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/ReflexDisparity/internal/mm"
	"github.com/e-gun/ReflexDisparity/internal/vv"
)

func NewMessageMakerWithDefaults() *mm.MessageMaker {
	return mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION, vv.DEFAULTGOLOGLEVEL)
}

func NewMessageMakerConfigured() *mm.MessageMaker {
	m := NewMessageMakerWithDefaults()
	UpdateMessageMakerWithConfig(m, Config)
	return m
}
