package basenc

import "demozcrypt/demozerr"

func demozerrBufferSmall(where string) error {
	return demozerr.New(demozerr.BufferSmall, where, "output buffer too small")
}

func demozerrMalformed(where, why string) error {
	return demozerr.New(demozerr.Malformed, where, why)
}

func demozerrAtPosition(where string, pos int) error {
	return demozerr.AtPosition(where, pos)
}
