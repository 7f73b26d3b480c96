//go:build darwin && cgo

package keyboard

/*
#cgo LDFLAGS: -framework Carbon -framework CoreFoundation
#include <Carbon/Carbon.h>
#include <CoreFoundation/CoreFoundation.h>

const char* clipvox_current_input_source(void) {
    // Process pending input source change notifications
    CFRunLoopRunInMode(kCFRunLoopDefaultMode, 0, false);

    TISInputSourceRef source = TISCopyCurrentKeyboardInputSource();
    if (!source) return NULL;
    CFStringRef prop = TISGetInputSourceProperty(source, kTISPropertyInputModeID);
    if (!prop) {
        prop = TISGetInputSourceProperty(source, kTISPropertyInputSourceID);
    }
    if (!prop) {
        prop = TISGetInputSourceProperty(source, kTISPropertyLocalizedName);
    }
    if (!prop) {
        CFRelease(source);
        return NULL;
    }
    static char buf[256];
    Boolean ok = CFStringGetCString(prop, buf, sizeof(buf), kCFStringEncodingUTF8);
    CFRelease(source);
    if (!ok) return NULL;
    return buf;
}
*/
import "C"

import "strings"

// CurrentLayoutRaw returns the input mode or source id, for example
// "com.apple.inputmethod.SCIM.ITABC".
func CurrentLayoutRaw() string {
	cstr := C.clipvox_current_input_source()
	if cstr == nil {
		return ""
	}
	return strings.TrimSpace(C.GoString(cstr))
}
